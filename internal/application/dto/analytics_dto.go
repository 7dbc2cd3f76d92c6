package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// DashboardRequest parámetros de GET /api/analytics/dashboard.
type DashboardRequest struct {
	DateFrom     string `query:"date_from"` // YYYY-MM-DD; vacío = sin límite inferior
	DateTo       string `query:"date_to"`   // YYYY-MM-DD; vacío = sin límite superior
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
}

// VolumeSeriesRequest parámetros de GET /api/analytics/volume.
type VolumeSeriesRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
	Granularity  string `query:"granularity"` // day (default), week o month
}

// TurnoverRequest parámetros de GET /api/analytics/turnover.
type TurnoverRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
	Basis        string `query:"basis"` // quantity (default) o volume
}

// CustomerRollupRequest parámetros de GET /api/analytics/customers.
type CustomerRollupRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
	SortBy       string `query:"sort_by"`    // outbound_qty (default), inbound_qty, outbound_volume, inbound_volume
	SortOrder    string `query:"sort_order"` // asc o desc (default)
}

// SKURollupRequest parámetros de GET /api/analytics/skus.
type SKURollupRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
	SortBy       string `query:"sort_by"` // además de los comunes acepta total_events
	SortOrder    string `query:"sort_order"`
	Limit        int    `query:"limit"` // máx filas a devolver (default 20, max 200)
}

// WarehouseRollupRequest parámetros de GET /api/analytics/warehouses.
type WarehouseRollupRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
	SortBy       string `query:"sort_by"`
	SortOrder    string `query:"sort_order"`
}

// FeeSummaryRequest parámetros de GET /api/analytics/fees.
type FeeSummaryRequest struct {
	DateFrom string `query:"date_from"` // filtra por fecha de despacho (ship_time)
	DateTo   string `query:"date_to"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DirectionTotalsDTO totales de una dirección del flujo (entradas o salidas).
type DirectionTotalsDTO struct {
	TotalEvents    int64           `json:"total_events"`
	TotalQty       int64           `json:"total_qty"`
	TotalVolumeCBM decimal.Decimal `json:"total_volume_cbm"`
	UniqueSKUs     int64           `json:"unique_skus"`
}

// DashboardSummaryDTO respuesta de GET /api/analytics/dashboard.
type DashboardSummaryDTO struct {
	Period           PeriodDTO          `json:"period"`
	Inbound          DirectionTotalsDTO `json:"inbound"`
	Outbound         DirectionTotalsDTO `json:"outbound"`
	UniqueCustomers  int64              `json:"unique_customers"`
	ActiveSKUs       int64              `json:"active_skus"`
	TotalProducts    int64              `json:"total_products"` // catálogo completo, sin filtros
	ActiveWarehouses int64              `json:"active_warehouses"`
}

// ── Serie temporal ────────────────────────────────────────────────────────────

// VolumePointDTO un período de la serie para una dirección.
type VolumePointDTO struct {
	Period         string          `json:"period"` // YYYY-MM-DD, IYYY-IW o YYYY-MM según granularidad
	EventCount     int64           `json:"event_count"`
	TotalQty       int64           `json:"total_qty"`
	TotalVolumeCBM decimal.Decimal `json:"total_volume_cbm"`
	UniqueSKUs     int64           `json:"unique_skus"`
}

// VolumeSeriesDTO respuesta de GET /api/analytics/volume, una serie por dirección.
type VolumeSeriesDTO struct {
	Period      PeriodDTO        `json:"period"`
	Granularity string           `json:"granularity"`
	Timezone    string           `json:"timezone"` // zona IANA usada para truncar los períodos
	Inbound     []VolumePointDTO `json:"inbound"`
	Outbound    []VolumePointDTO `json:"outbound"`
}

// ── Rotación ──────────────────────────────────────────────────────────────────

// TurnoverDTO métricas de rotación de inventario del período.
// Fórmula: rotación = salidas / inventario promedio, con
// inventario promedio = (inicial + final) / 2.
type TurnoverDTO struct {
	Period               PeriodDTO       `json:"period"`
	Basis                string          `json:"basis"` // quantity (unidades) o volume (m³)
	TotalInbound         decimal.Decimal `json:"total_inbound"`
	TotalOutbound        decimal.Decimal `json:"total_outbound"`
	BeginningInventory   decimal.Decimal `json:"beginning_inventory"` // neto acumulado antes del período
	EndingInventory      decimal.Decimal `json:"ending_inventory"`
	AverageInventory     decimal.Decimal `json:"average_inventory"`
	TurnoverRate         decimal.Decimal `json:"turnover_rate"`
	AverageInventoryZero bool            `json:"average_inventory_zero"` // promedio ≤ 0: la tasa se fuerza a 0
	DaysInPeriod         *int            `json:"days_in_period"`         // días inclusive; null con rango abierto
}

// ── Rollups ───────────────────────────────────────────────────────────────────

// CustomerRollupDTO actividad agregada de un cliente, por dirección.
type CustomerRollupDTO struct {
	CustomerCode      string          `json:"customer_code"` // "UNKNOWN" agrupa eventos sin cliente
	InboundEvents     int64           `json:"inbound_events"`
	InboundQty        int64           `json:"inbound_qty"`
	InboundVolumeCBM  decimal.Decimal `json:"inbound_volume_cbm"`
	InboundSKUs       int64           `json:"inbound_skus"`
	OutboundEvents    int64           `json:"outbound_events"`
	OutboundQty       int64           `json:"outbound_qty"`
	OutboundVolumeCBM decimal.Decimal `json:"outbound_volume_cbm"`
	OutboundSKUs      int64           `json:"outbound_skus"`
}

// SKURollupDTO actividad agregada de un producto (barcode, cliente).
type SKURollupDTO struct {
	ProductBarcode    string          `json:"product_barcode"`
	CustomerCode      string          `json:"customer_code"`
	InboundQty        int64           `json:"inbound_qty"`
	OutboundQty       int64           `json:"outbound_qty"`
	InboundVolumeCBM  decimal.Decimal `json:"inbound_volume_cbm"`
	OutboundVolumeCBM decimal.Decimal `json:"outbound_volume_cbm"`
	TotalEvents       int64           `json:"total_events"`
	NetChange         int64           `json:"net_change"` // entradas - salidas (unidades)
}

// WarehouseRollupDTO actividad agregada de una bodega, enriquecida con el
// directorio de bodegas configurado (nombre y zona horaria).
type WarehouseRollupDTO struct {
	WarehouseID       string          `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	Timezone          string          `json:"timezone"` // "Unknown" si la bodega no está en el directorio
	InboundEvents     int64           `json:"inbound_events"`
	InboundQty        int64           `json:"inbound_qty"`
	InboundVolumeCBM  decimal.Decimal `json:"inbound_volume_cbm"`
	OutboundEvents    int64           `json:"outbound_events"`
	OutboundQty       int64           `json:"outbound_qty"`
	OutboundVolumeCBM decimal.Decimal `json:"outbound_volume_cbm"`
	UniqueSKUs        int64           `json:"unique_skus"`
	UniqueCustomers   int64           `json:"unique_customers"`
}

// ── Tarifas ───────────────────────────────────────────────────────────────────

// CustomerFeesDTO totales facturados a un cliente según los Excel importados (USD).
type CustomerFeesDTO struct {
	CustomerCode  string          `json:"customer_code"`
	OrderCount    int64           `json:"order_count"`
	ShippingFee   decimal.Decimal `json:"shipping_fee"`
	OperationFee  decimal.Decimal `json:"operation_fee"`
	FuelSurcharge decimal.Decimal `json:"fuel_surcharge"`
	MaterialFee   decimal.Decimal `json:"material_fee"`
	OtherFee      decimal.Decimal `json:"other_fee"`
	TotalFee      decimal.Decimal `json:"total_fee"`
}

// FeeSummaryDTO respuesta de GET /api/analytics/fees.
type FeeSummaryDTO struct {
	Period    PeriodDTO         `json:"period"`
	Customers []CustomerFeesDTO `json:"customers"`
	TotalUSD  decimal.Decimal   `json:"total_usd"`
}
