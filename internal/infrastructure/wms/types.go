package wms

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ── Servicios del web-service ─────────────────────────────────────────────────

const (
	// ServiceOrderList órdenes de salida (outbound).
	ServiceOrderList = "getOrderList"
	// ServiceReceivingList recepciones de entrada (inbound).
	ServiceReceivingList = "getReceivingListForYB"
	// ServiceProductList catálogo de productos.
	ServiceProductList = "getProductList"
	// ServiceInventoryLog log de movimientos de inventario.
	ServiceInventoryLog = "getInventoryLog"
)

// TimeLayout formato de los timestamps del WMS, también para parámetros de rango.
const TimeLayout = "2006-01-02 15:04:05"

// ── Tipos de wire ─────────────────────────────────────────────────────────────

// Record una fila del upstream. El WMS mezcla strings y números sin consistencia,
// así que los campos se leen con los helpers tolerantes de abajo.
type Record map[string]any

// Str devuelve el campo como string ("" si falta o es null).
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Int devuelve el campo como entero (0 si falta o no es numérico).
func (r Record) Int(key string) int64 {
	s := r.Str(key)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// Decimal devuelve el campo como decimal (nil si falta o no es numérico).
func (r Record) Decimal(key string) *decimal.Decimal {
	s := r.Str(key)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// Time parsea un timestamp del WMS. Vacío o con año "0000" cuenta como nulo
// (el WMS usa "0000-00-00 00:00:00" para fechas sin valor).
func (r Record) Time(key string) *time.Time {
	s := r.Str(key)
	if s == "" || strings.HasPrefix(s, "0000") {
		return nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil
		}
	}
	return &t
}

// flexInt acepta números JSON y strings numéricos (totalCount llega de ambas formas).
type flexInt int64

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = flexInt(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = flexInt(f)
	return nil
}

// apiResponse sobre de respuesta del WMS.
type apiResponse struct {
	Ask        string   `json:"ask"`
	Message    string   `json:"message"`
	Data       []Record `json:"data"`
	TotalCount flexInt  `json:"totalCount"`
}

// Page una página de resultados del WMS.
type Page struct {
	Records    []Record
	TotalCount int
}

// Window sub-rango de fechas para consultas largas (el WMS limita cada consulta).
type Window struct {
	From time.Time
	To   time.Time
}
