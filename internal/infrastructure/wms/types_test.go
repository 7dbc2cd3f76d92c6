package wms_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turnover-api/internal/infrastructure/wms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Record: el WMS devuelve campos como string o número sin consistencia,
// y usa "0000-00-00 00:00:00" para fechas sin valor. Los helpers deben tolerar
// todas esas variantes sin reventar.
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_StrToleraTipos(t *testing.T) {
	rec := wms.Record{
		"texto":  "  ABC-123  ",
		"numero": json.Number("42"),
		"flot":   3.5,
		"nulo":   nil,
	}

	assert.Equal(t, "ABC-123", rec.Str("texto"), "debe recortar espacios")
	assert.Equal(t, "42", rec.Str("numero"))
	assert.Equal(t, "3.5", rec.Str("flot"))
	assert.Equal(t, "", rec.Str("nulo"))
	assert.Equal(t, "", rec.Str("no_existe"))
}

func TestRecord_IntParseaStringsYFloats(t *testing.T) {
	rec := wms.Record{
		"entero":   "15",
		"flotante": "15.0",
		"numero":   json.Number("7"),
		"basura":   "abc",
	}

	assert.Equal(t, int64(15), rec.Int("entero"))
	assert.Equal(t, int64(15), rec.Int("flotante"))
	assert.Equal(t, int64(7), rec.Int("numero"))
	assert.Equal(t, int64(0), rec.Int("basura"))
	assert.Equal(t, int64(0), rec.Int("no_existe"))
}

func TestRecord_DecimalDevuelveNilSinValor(t *testing.T) {
	rec := wms.Record{
		"peso":   "12.345",
		"vacio":  "",
		"basura": "n/a",
	}

	peso := rec.Decimal("peso")
	require.NotNil(t, peso)
	assert.Equal(t, "12.345", peso.String())
	assert.Nil(t, rec.Decimal("vacio"))
	assert.Nil(t, rec.Decimal("basura"))
	assert.Nil(t, rec.Decimal("no_existe"))
}

func TestRecord_TimeParseaTimestampDelWMS(t *testing.T) {
	rec := wms.Record{"add_time": "2024-03-05 10:30:00"}

	ts := rec.Time("add_time")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), *ts)
}

func TestRecord_TimeFechaSinHora(t *testing.T) {
	rec := wms.Record{"fecha": "2024-03-05"}

	ts := rec.Time("fecha")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *ts)
}

func TestRecord_TimeCeroCuentaComoNulo(t *testing.T) {
	rec := wms.Record{
		"cero":  "0000-00-00 00:00:00",
		"vacio": "",
	}

	assert.Nil(t, rec.Time("cero"), `el WMS usa "0000-..." para fechas sin valor`)
	assert.Nil(t, rec.Time("vacio"))
	assert.Nil(t, rec.Time("no_existe"))
}
