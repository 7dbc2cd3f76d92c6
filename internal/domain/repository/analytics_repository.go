package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsFilter filtros comunes de las consultas analíticas.
// Campos vacíos o nil significan "sin filtrar".
type AnalyticsFilter struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	WarehouseID  string
	CustomerCode string
}

// FlowTotalsResult totales de entrada y salida en el período filtrado,
// más los conteos de actividad del panel (clientes, SKUs y bodegas distintos).
type FlowTotalsResult struct {
	InboundEvents    int64
	OutboundEvents   int64
	InboundQty       int64
	OutboundQty      int64
	InboundVolume    decimal.Decimal
	OutboundVolume   decimal.Decimal
	InboundSKUs      int64 // barcodes distintos con entradas
	OutboundSKUs     int64 // barcodes distintos con salidas
	ActiveCustomers  int64
	ActiveSKUs       int64
	ActiveWarehouses int64
}

// VolumeBucketResult una fila (período, dirección) de la serie temporal.
// Bucket es la etiqueta del período: YYYY-MM-DD, IYYY-IW o YYYY-MM según granularidad.
type VolumeBucketResult struct {
	Bucket    string
	Direction string
	Events    int64
	Quantity  int64
	Volume    decimal.Decimal
	SKUs      int64
}

// TurnoverInputsResult insumos crudos del cálculo de rotación, en la base pedida
// (unidades o m³). Beginning es el neto acumulado estrictamente antes del inicio del período.
type TurnoverInputsResult struct {
	Beginning decimal.Decimal
	Inbound   decimal.Decimal
	Outbound  decimal.Decimal
}

// CustomerBreakdownResult actividad agregada de un cliente, por dirección.
type CustomerBreakdownResult struct {
	CustomerCode   string
	InboundEvents  int64
	OutboundEvents int64
	InboundQty     int64
	OutboundQty    int64
	InboundVolume  decimal.Decimal
	OutboundVolume decimal.Decimal
	InboundSKUs    int64
	OutboundSKUs   int64
}

// SKURollupResult actividad agregada de un producto (barcode, cliente).
type SKURollupResult struct {
	Barcode        string
	CustomerCode   string
	InboundQty     int64
	OutboundQty    int64
	InboundVolume  decimal.Decimal
	OutboundVolume decimal.Decimal
	TotalEvents    int64
}

// WarehouseRollupResult actividad agregada de una bodega. SKUs y Customers
// cuentan valores distintos sobre ambas direcciones juntas.
type WarehouseRollupResult struct {
	WarehouseID    string
	InboundEvents  int64
	OutboundEvents int64
	InboundQty     int64
	OutboundQty    int64
	InboundVolume  decimal.Decimal
	OutboundVolume decimal.Decimal
	SKUs           int64
	Customers      int64
}

// WarehouseNetVolumeResult volumen neto histórico (entradas menos salidas) de una bodega.
type WarehouseNetVolumeResult struct {
	WarehouseID string
	NetVolume   decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para analítica de inventario.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetFlowTotals devuelve los totales por dirección y los conteos de actividad
	// del período. Usa COALESCE para devolver ceros cuando no hay actividad.
	GetFlowTotals(ctx context.Context, filter AnalyticsFilter) (*FlowTotalsResult, error)

	// CountCatalogSKUs devuelve el total de productos del catálogo sincronizado,
	// sin aplicar filtros de actividad.
	CountCatalogSKUs(ctx context.Context) (int64, error)

	// GetVolumeSeries devuelve la serie temporal agrupada por (período, dirección)
	// con granularidad day, week (semana ISO) o month. tz es la zona horaria IANA
	// para truncar fechas (UTC si está vacía).
	GetVolumeSeries(ctx context.Context, filter AnalyticsFilter, granularity, tz string) ([]VolumeBucketResult, error)

	// GetTurnoverInputs devuelve inventario inicial, entradas y salidas del período
	// en la base pedida: "quantity" (unidades) o "volume" (m³).
	GetTurnoverInputs(ctx context.Context, basis string, filter AnalyticsFilter) (*TurnoverInputsResult, error)

	// ── Rollups ──────────────────────────────────────────────────────────────

	// GetCustomerBreakdown agrega actividad por cliente. Los eventos sin cliente
	// se agrupan bajo "UNKNOWN". sortBy y sortOrder como en GetSKURollup;
	// por defecto ordena por salidas (unidades) descendente.
	GetCustomerBreakdown(ctx context.Context, filter AnalyticsFilter, sortBy, sortOrder string) ([]CustomerBreakdownResult, error)

	// GetSKURollup agrega actividad por (barcode, cliente). sortBy acepta
	// inbound_qty, outbound_qty, inbound_volume, outbound_volume o total_events;
	// sortOrder asc o desc; empates por barcode ascendente.
	GetSKURollup(ctx context.Context, filter AnalyticsFilter, sortBy, sortOrder string, limit int) ([]SKURollupResult, error)

	// GetWarehouseRollup agrega actividad por bodega, por defecto ordenada por
	// salidas (unidades) descendente.
	GetWarehouseRollup(ctx context.Context, filter AnalyticsFilter, sortBy, sortOrder string) ([]WarehouseRollupResult, error)

	// GetNetVolumeByWarehouse devuelve el volumen neto histórico por bodega,
	// insumo del cálculo de utilización contra la capacidad configurada.
	GetNetVolumeByWarehouse(ctx context.Context) ([]WarehouseNetVolumeResult, error)
}
