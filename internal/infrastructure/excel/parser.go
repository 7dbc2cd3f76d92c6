package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// columnMap encabezado normalizado → campo canónico. Cubre ambas plantillas;
// los conceptos de cargo que el modelo no desglosa se acumulan en other_fee.
var columnMap = map[string]string{
	"订单号":        "order_code",
	"参考号":        "reference_no",
	"客户代码":       "customer_code",
	"仓库代码":       "warehouse_code",
	"订单内件数":      "parcel_quantity",
	"出货时间":       "ship_time",
	"下单时间":       "order_time",
	"国家代码":       "country_code",
	"跟踪号":        "tracking_number",
	"运单号":        "tracking_number",
	"订单状态":       "order_status",
	"计费重量":       "billing_weight",
	"实际重量":       "actual_weight",
	"订单体积(cm³)":  "order_volume_cm3",
	"长":          "measure_length",
	"宽":          "measure_width",
	"高":          "measure_height",
	"运费(USD)":    "shipping_fee",
	"其他费用(USD)":  "other_fee",
	"总费用(USD)":   "total_fee",
	"运输费(USD)":   "shipping_fee",
	"操作费(USD)":   "operation_fee",
	"燃油附加费(USD)": "fuel_surcharge",
	"包材费用(USD)":  "material_fee",
	"超长费(USD)":   "other_fee_add",
	"超偏远(USD)":   "other_fee_add",
	"偏远(USD)":    "other_fee_add",
	"住宅附加费(USD)": "other_fee_add",
}

// Row fila canónica de una plantilla de facturación.
type Row struct {
	OrderCode      string
	ReferenceNo    string
	CustomerCode   string
	WarehouseCode  string
	ParcelQuantity int64
	ShipTime       time.Time // requerido: sin fecha de salida la fila se descarta
	OrderTime      *time.Time
	CountryCode    string
	TrackingNumber string
	OrderStatus    string
	BillingWeight  *decimal.Decimal
	ActualWeight   *decimal.Decimal
	OrderVolumeCM3 *decimal.Decimal
	MeasureLength  *decimal.Decimal
	MeasureWidth   *decimal.Decimal
	MeasureHeight  *decimal.Decimal
	ShippingFee    *decimal.Decimal
	OperationFee   *decimal.Decimal
	FuelSurcharge  *decimal.Decimal
	MaterialFee    *decimal.Decimal
	OtherFee       *decimal.Decimal
	TotalFee       *decimal.Decimal
}

// VolumeCBM volumen de la orden en m³: dimensiones si vienen, si no 订单体积(cm³).
func (r Row) VolumeCBM() *decimal.Decimal {
	if v := entity.ComputeVolumeCBM(r.MeasureLength, r.MeasureWidth, r.MeasureHeight); v != nil {
		return v
	}
	if r.OrderVolumeCM3 != nil && r.OrderVolumeCM3.IsPositive() {
		v := r.OrderVolumeCM3.Div(decimal.NewFromInt(1_000_000)).Round(6)
		return &v
	}
	return nil
}

// ParseResult resultado del parseo de un archivo.
type ParseResult struct {
	Template Template
	Rows     []Row
	Skipped  int // filas con datos pero sin los campos requeridos
}

// Parse lee un .xlsx, detecta la plantilla y mapea las filas al modelo canónico.
// Filas sin order_code, customer_code, 出货时间 o cantidad válida se descartan y
// se cuentan en Skipped. Si ninguna fila es válida devuelve ErrNoValidRows.
func Parse(r io.Reader) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: abrir archivo: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel: archivo sin hojas: %w", domain.ErrUnknownTemplate)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excel: leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel: archivo vacío: %w", domain.ErrUnknownTemplate)
	}

	tpl, err := DetectTemplate(rows[0])
	if err != nil {
		return nil, err
	}

	// índice de columna → campo canónico
	fields := make(map[int]string)
	for i, h := range rows[0] {
		if field, ok := columnMap[foldHeader(h)]; ok {
			fields[i] = field
		}
	}

	result := &ParseResult{Template: tpl}
	for _, cells := range rows[1:] {
		row, status := parseRow(cells, fields)
		switch status {
		case rowValid:
			result.Rows = append(result.Rows, row)
		case rowInvalid:
			result.Skipped++
		}
		// las filas en blanco no cuentan
	}

	if len(result.Rows) == 0 {
		return nil, fmt.Errorf("excel: %d filas descartadas, ninguna válida: %w", result.Skipped, domain.ErrNoValidRows)
	}
	return result, nil
}

type rowStatus int

const (
	rowValid rowStatus = iota
	rowInvalid
	rowBlank
)

func parseRow(cells []string, fields map[int]string) (Row, rowStatus) {
	var row Row
	blank := true
	valid := true
	var qty *int64

	for i, raw := range cells {
		field, ok := fields[i]
		if !ok {
			continue
		}
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		blank = false

		switch field {
		case "order_code":
			row.OrderCode = val
		case "reference_no":
			row.ReferenceNo = val
		case "customer_code":
			row.CustomerCode = val
		case "warehouse_code":
			row.WarehouseCode = val
		case "country_code":
			row.CountryCode = val
		case "tracking_number":
			row.TrackingNumber = val
		case "order_status":
			row.OrderStatus = val
		case "parcel_quantity":
			n, err := parseQuantity(val)
			if err != nil {
				valid = false
				continue
			}
			qty = &n
		case "ship_time":
			if t := parseTime(val); t != nil {
				row.ShipTime = *t
			}
		case "order_time":
			row.OrderTime = parseTime(val)
		case "billing_weight":
			row.BillingWeight = parseDecimal(val)
		case "actual_weight":
			row.ActualWeight = parseDecimal(val)
		case "order_volume_cm3":
			row.OrderVolumeCM3 = parseDecimal(val)
		case "measure_length":
			row.MeasureLength = parseDecimal(val)
		case "measure_width":
			row.MeasureWidth = parseDecimal(val)
		case "measure_height":
			row.MeasureHeight = parseDecimal(val)
		case "shipping_fee":
			row.ShippingFee = parseDecimal(val)
		case "operation_fee":
			row.OperationFee = parseDecimal(val)
		case "fuel_surcharge":
			row.FuelSurcharge = parseDecimal(val)
		case "material_fee":
			row.MaterialFee = parseDecimal(val)
		case "other_fee":
			row.OtherFee = parseDecimal(val)
		case "other_fee_add":
			if d := parseDecimal(val); d != nil {
				if row.OtherFee == nil {
					row.OtherFee = d
				} else {
					sum := row.OtherFee.Add(*d)
					row.OtherFee = &sum
				}
			}
		case "total_fee":
			row.TotalFee = parseDecimal(val)
		}
	}

	if blank {
		return row, rowBlank
	}
	if !valid || row.OrderCode == "" || row.CustomerCode == "" || row.ShipTime.IsZero() ||
		qty == nil || *qty < 0 {
		return row, rowInvalid
	}
	row.ParcelQuantity = *qty
	return row, rowValid
}

// parseTimeLayouts formatos que producen los exports (y los estilos de celda de Excel).
var parseTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"1/2/06 15:04",
	"1/2/06",
}

func parseTime(val string) *time.Time {
	for _, layout := range parseTimeLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return &t
		}
	}
	return nil
}

func parseDecimal(val string) *decimal.Decimal {
	cleaned := strings.ReplaceAll(val, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

func parseQuantity(val string) (int64, error) {
	cleaned := strings.ReplaceAll(val, ",", "")
	if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
