package excel_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/infrastructure/excel"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// buildWorkbook arma un .xlsx en memoria con las filas dadas (como strings).
func buildWorkbook(t *testing.T, rows [][]any) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func assertDecimal(t *testing.T, want string, got *decimal.Decimal, msg string) {
	t.Helper()
	require.NotNil(t, got, msg)
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: esperaba %s, llegó %s", msg, want, got.String())
}

var headersHorizontal = []any{
	"订单号", "参考号", "客户代码", "仓库代码", "订单内件数", "出货时间", "跟踪号",
	"运费(USD)", "其他费用(USD)", "总费用(USD)",
}

var headersDesglosada = []any{
	"订单号", "客户代码", "订单内件数", "出货时间", "长", "宽", "高",
	"运输费(USD)", "操作费(USD)", "燃油附加费(USD)", "包材费用(USD)", "超长费(USD)", "偏远(USD)",
}

// ── DetectTemplate ────────────────────────────────────────────────────────────

func TestDetectTemplate_Horizontal(t *testing.T) {
	headers := []string{"订单号", "参考号", "客户代码", "订单内件数", "出货时间", "运费(USD)", "其他费用(USD)", "总费用(USD)"}

	tpl, err := excel.DetectTemplate(headers)

	require.NoError(t, err)
	assert.Equal(t, excel.TemplateHorizontal, tpl)
}

func TestDetectTemplate_Desglosada(t *testing.T) {
	headers := []string{"订单号", "客户代码", "订单内件数", "出货时间", "运输费(USD)", "操作费(USD)", "燃油附加费(USD)", "包材费用(USD)"}

	tpl, err := excel.DetectTemplate(headers)

	require.NoError(t, err)
	assert.Equal(t, excel.TemplateFeeBreakdown, tpl)
}

func TestDetectTemplate_PliegaAnchoCompleto(t *testing.T) {
	// encabezados con paréntesis y letras de ancho completo, como exporta el WMS
	headers := []string{"订单号", "客户代码", "订单内件数", "出货时间", "运费（ＵＳＤ）", "其他费用（ＵＳＤ）", "总费用（ＵＳＤ）"}

	tpl, err := excel.DetectTemplate(headers)

	require.NoError(t, err)
	assert.Equal(t, excel.TemplateHorizontal, tpl)
}

func TestDetectTemplate_NoReconocida(t *testing.T) {
	headers := []string{"columna_a", "columna_b", "columna_c"}

	_, err := excel.DetectTemplate(headers)

	assert.True(t, errors.Is(err, domain.ErrUnknownTemplate))
}

func TestDetectTemplate_SoloColumnasBaseNoAlcanza(t *testing.T) {
	// las columnas compartidas por ambas plantillas no bastan para distinguirlas
	headers := []string{"订单号", "客户代码", "订单内件数", "出货时间"}

	_, err := excel.DetectTemplate(headers)

	assert.True(t, errors.Is(err, domain.ErrUnknownTemplate),
		"sin columnas de cargos el archivo no se reconoce")
}

// ── Parse ─────────────────────────────────────────────────────────────────────

func TestParse_PlantillaHorizontal(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersHorizontal,
		{"HX001", "REF1", "CUST01", "DEW", "3", "2024-03-01 10:00:00", "TRK1", "12.50", "1.25", "13.75"},
		{"HX002", "REF2", "CUST01", "DEW", "1", "2024-03-02 08:15:00", "TRK2", "8.00", "0", "8.00"},
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	assert.Equal(t, excel.TemplateHorizontal, result.Template)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Rows, 2)

	row := result.Rows[0]
	assert.Equal(t, "HX001", row.OrderCode)
	assert.Equal(t, "REF1", row.ReferenceNo)
	assert.Equal(t, "CUST01", row.CustomerCode)
	assert.Equal(t, "DEW", row.WarehouseCode)
	assert.Equal(t, int64(3), row.ParcelQuantity)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), row.ShipTime)
	assert.Equal(t, "TRK1", row.TrackingNumber)
	assertDecimal(t, "12.50", row.ShippingFee, "运费")
	assertDecimal(t, "1.25", row.OtherFee, "其他费用")
	assertDecimal(t, "13.75", row.TotalFee, "总费用")
}

func TestParse_PlantillaDesglosada(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersDesglosada,
		{"HX010", "CUST02", "2", "2024-03-05 09:30:00", "50", "40", "30", "10.00", "2.00", "0.50", "0.30", "1.00", "0.70"},
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	assert.Equal(t, excel.TemplateFeeBreakdown, result.Template)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assertDecimal(t, "10.00", row.ShippingFee, "运输费")
	assertDecimal(t, "2.00", row.OperationFee, "操作费")
	assertDecimal(t, "0.50", row.FuelSurcharge, "燃油附加费")
	assertDecimal(t, "0.30", row.MaterialFee, "包材费用")
	assertDecimal(t, "1.70", row.OtherFee, "超长费 + 偏远 acumulan en otros")
	assert.Nil(t, row.TotalFee, "la plantilla desglosada no trae total")
}

func TestParse_FilasInvalidasSeDescartanYCuentan(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersHorizontal,
		{"HX001", "", "CUST01", "DEW", "3", "2024-03-01 10:00:00", "", "1", "0", "1"},
		{"", "", "CUST01", "DEW", "3", "2024-03-01 10:00:00", "", "1", "0", "1"},       // sin order_code
		{"HX003", "", "CUST01", "DEW", "3", "", "", "1", "0", "1"},                     // sin 出货时间
		{"HX004", "", "CUST01", "DEW", "-2", "2024-03-01 10:00:00", "", "1", "0", "1"}, // cantidad negativa
		{"HX005", "", "", "DEW", "3", "2024-03-01 10:00:00", "", "1", "0", "1"},        // sin cliente
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	assert.Len(t, result.Rows, 1, "solo la primera fila es válida")
	assert.Equal(t, 4, result.Skipped)
}

func TestParse_SinFilasValidas(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersHorizontal,
		{"", "", "CUST01", "DEW", "3", "2024-03-01 10:00:00", "", "1", "0", "1"},
	})

	_, err := excel.Parse(wb)

	assert.True(t, errors.Is(err, domain.ErrNoValidRows))
}

func TestParse_PlantillaNoReconocidaNoEscribeNada(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		{"col_a", "col_b", "col_c"},
		{"1", "2", "3"},
	})

	_, err := excel.Parse(wb)

	assert.True(t, errors.Is(err, domain.ErrUnknownTemplate))
}

func TestParse_ArchivoQueNoEsExcel(t *testing.T) {
	_, err := excel.Parse(strings.NewReader("esto no es un zip de Excel"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "abrir archivo")
}

func TestParse_VolumenDesdeDimensiones(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersDesglosada,
		{"HX020", "CUST02", "1", "2024-03-05 09:30:00", "50", "40", "30", "1", "0", "0", "0", "0", "0"},
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assertDecimal(t, "0.06", result.Rows[0].VolumeCBM(), "50×40×30 cm = 0.06 m³")
}

func TestParse_VolumenDesdeCm3CuandoFaltanDimensiones(t *testing.T) {
	headers := []any{"订单号", "客户代码", "订单内件数", "出货时间", "订单体积(cm³)",
		"运费(USD)", "其他费用(USD)", "总费用(USD)"}
	wb := buildWorkbook(t, [][]any{
		headers,
		{"HX021", "CUST02", "1", "2024-03-05 09:30:00", "120000", "1", "0", "1"},
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assertDecimal(t, "0.12", result.Rows[0].VolumeCBM(), "120000 cm³ = 0.12 m³")
}

func TestParse_SinVolumenDevuelveNil(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		headersHorizontal,
		{"HX022", "", "CUST01", "DEW", "1", "2024-03-01 10:00:00", "", "1", "0", "1"},
	})

	result, err := excel.Parse(wb)

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Nil(t, result.Rows[0].VolumeCBM(), "sin dimensiones ni cm³ el volumen queda nulo")
}
