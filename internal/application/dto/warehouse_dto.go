package dto

import "github.com/shopspring/decimal"

// SetCapacityRequest cuerpo de PUT /api/warehouses/capacities.
type SetCapacityRequest struct {
	WarehouseID      string          `json:"warehouse_id"`
	TotalCapacityCBM decimal.Decimal `json:"total_capacity_cbm"`
}

// WarehouseCapacityDTO capacidad configurada de una bodega. El listado incluye
// todas las bodegas del directorio, con capacidad 0 cuando no se ha configurado.
type WarehouseCapacityDTO struct {
	WarehouseID      string          `json:"warehouse_id"`
	WarehouseName    string          `json:"warehouse_name"`
	TotalCapacityCBM decimal.Decimal `json:"total_capacity_cbm"`
}

// WarehouseUtilizationDTO ocupación estimada de una bodega: volumen neto
// acumulado (entradas - salidas, histórico completo) contra la capacidad configurada.
type WarehouseUtilizationDTO struct {
	WarehouseID      string           `json:"warehouse_id"`
	WarehouseName    string           `json:"warehouse_name"`
	NetVolumeCBM     decimal.Decimal  `json:"net_volume_cbm"`
	TotalCapacityCBM decimal.Decimal  `json:"total_capacity_cbm"`
	CapacitySet      bool             `json:"capacity_set"`    // false cuando la capacidad es 0 o no existe
	UtilizationPct   *decimal.Decimal `json:"utilization_pct"` // 0-100; null sin capacidad configurada
}
