package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/pkg/config"
)

const (
	defaultSKULimit = 20
	maxSKULimit     = 200
)

var two = decimal.NewFromInt(2)

// granularities valores aceptados para la serie temporal.
var granularities = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
}

// AnalyticsUseCase consultas analíticas sobre el flujo de inventario: serie
// temporal, rotación y comparativos por cliente, SKU y bodega.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	warehouses    config.WarehouseDirectory
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, warehouses config.WarehouseDirectory) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, warehouses: warehouses}
}

// GetVolumeSeries devuelve la serie temporal de entradas y salidas.
//
// Los períodos se truncan en la zona horaria de la bodega cuando se filtra por
// una bodega del directorio; en cualquier otro caso se truncan en UTC.
func (uc *AnalyticsUseCase) GetVolumeSeries(ctx context.Context, req dto.VolumeSeriesRequest) (*dto.VolumeSeriesDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}
	granularity := req.Granularity
	if granularity == "" {
		granularity = "day"
	}
	if !granularities[granularity] {
		return nil, fmt.Errorf("granularity inválida %q, use day, week o month: %w", req.Granularity, domain.ErrInvalidInput)
	}

	tz := "UTC"
	if filter.WarehouseID != "" {
		if info := uc.warehouses.Info(filter.WarehouseID); info.Timezone != "" {
			tz = info.Timezone
		}
	}

	rows, err := uc.analyticsRepo.GetVolumeSeries(ctx, filter, granularity, tz)
	if err != nil {
		return nil, fmt.Errorf("analytics: serie de volumen: %w", err)
	}

	res := &dto.VolumeSeriesDTO{
		Period:      periodOf(filter),
		Granularity: granularity,
		Timezone:    tz,
		Inbound:     []dto.VolumePointDTO{},
		Outbound:    []dto.VolumePointDTO{},
	}
	for _, row := range rows {
		point := dto.VolumePointDTO{
			Period:         row.Bucket,
			EventCount:     row.Events,
			TotalQty:       row.Quantity,
			TotalVolumeCBM: row.Volume,
			UniqueSKUs:     row.SKUs,
		}
		switch row.Direction {
		case entity.DirectionInbound:
			res.Inbound = append(res.Inbound, point)
		case entity.DirectionOutbound:
			res.Outbound = append(res.Outbound, point)
		}
	}
	return res, nil
}

// GetTurnover calcula la rotación de inventario del período.
//
// Inventario inicial = neto acumulado estrictamente antes del período (0 con
// rango abierto); final = inicial + entradas - salidas. Cuando el promedio no
// es positivo la tasa queda en 0 y se marca average_inventory_zero, sin
// ajustar los valores reportados.
func (uc *AnalyticsUseCase) GetTurnover(ctx context.Context, req dto.TurnoverRequest) (*dto.TurnoverDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}
	basis := req.Basis
	if basis == "" {
		basis = "quantity"
	}
	if basis != "quantity" && basis != "volume" {
		return nil, fmt.Errorf("basis inválida %q, use quantity o volume: %w", req.Basis, domain.ErrInvalidInput)
	}

	inputs, err := uc.analyticsRepo.GetTurnoverInputs(ctx, basis, filter)
	if err != nil {
		return nil, fmt.Errorf("analytics: insumos de rotación: %w", err)
	}

	ending := inputs.Beginning.Add(inputs.Inbound).Sub(inputs.Outbound)
	average := inputs.Beginning.Add(ending).Div(two)

	rate := decimal.Zero
	averageZero := !average.IsPositive()
	if !averageZero {
		rate = inputs.Outbound.Div(average).Round(4)
	}

	var days *int
	if filter.DateFrom != nil && filter.DateTo != nil {
		d := int(filter.DateTo.Sub(*filter.DateFrom).Hours()/24) + 1
		days = &d
	}

	return &dto.TurnoverDTO{
		Period:               periodOf(filter),
		Basis:                basis,
		TotalInbound:         inputs.Inbound,
		TotalOutbound:        inputs.Outbound,
		BeginningInventory:   inputs.Beginning,
		EndingInventory:      ending,
		AverageInventory:     average.Round(2),
		TurnoverRate:         rate,
		AverageInventoryZero: averageZero,
		DaysInPeriod:         days,
	}, nil
}

// GetCustomerBreakdown agrega la actividad por cliente, por defecto ordenada
// por salidas en unidades descendente.
func (uc *AnalyticsUseCase) GetCustomerBreakdown(ctx context.Context, req dto.CustomerRollupRequest) ([]dto.CustomerRollupDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}
	sortBy, sortOrder, err := normalizeSort(req.SortBy, req.SortOrder, rollupSorts)
	if err != nil {
		return nil, err
	}

	rows, err := uc.analyticsRepo.GetCustomerBreakdown(ctx, filter, sortBy, sortOrder)
	if err != nil {
		return nil, fmt.Errorf("analytics: clientes: %w", err)
	}

	customers := make([]dto.CustomerRollupDTO, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, dto.CustomerRollupDTO{
			CustomerCode:      row.CustomerCode,
			InboundEvents:     row.InboundEvents,
			InboundQty:        row.InboundQty,
			InboundVolumeCBM:  row.InboundVolume,
			InboundSKUs:       row.InboundSKUs,
			OutboundEvents:    row.OutboundEvents,
			OutboundQty:       row.OutboundQty,
			OutboundVolumeCBM: row.OutboundVolume,
			OutboundSKUs:      row.OutboundSKUs,
		})
	}
	return customers, nil
}

// GetSKURollup agrega la actividad por (barcode, cliente). El límite de filas
// se ajusta al rango 1..200, con 20 por defecto.
func (uc *AnalyticsUseCase) GetSKURollup(ctx context.Context, req dto.SKURollupRequest) ([]dto.SKURollupDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}
	sortBy, sortOrder, err := normalizeSort(req.SortBy, req.SortOrder, skuSorts)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSKULimit
	}
	if limit > maxSKULimit {
		limit = maxSKULimit
	}

	rows, err := uc.analyticsRepo.GetSKURollup(ctx, filter, sortBy, sortOrder, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics: SKUs: %w", err)
	}

	skus := make([]dto.SKURollupDTO, 0, len(rows))
	for _, row := range rows {
		skus = append(skus, dto.SKURollupDTO{
			ProductBarcode:    row.Barcode,
			CustomerCode:      row.CustomerCode,
			InboundQty:        row.InboundQty,
			OutboundQty:       row.OutboundQty,
			InboundVolumeCBM:  row.InboundVolume,
			OutboundVolumeCBM: row.OutboundVolume,
			TotalEvents:       row.TotalEvents,
			NetChange:         row.InboundQty - row.OutboundQty,
		})
	}
	return skus, nil
}

// GetWarehouseComparison agrega la actividad por bodega y la enriquece con el
// directorio configurado (nombre y zona horaria).
func (uc *AnalyticsUseCase) GetWarehouseComparison(ctx context.Context, req dto.WarehouseRollupRequest) ([]dto.WarehouseRollupDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}
	sortBy, sortOrder, err := normalizeSort(req.SortBy, req.SortOrder, rollupSorts)
	if err != nil {
		return nil, err
	}

	rows, err := uc.analyticsRepo.GetWarehouseRollup(ctx, filter, sortBy, sortOrder)
	if err != nil {
		return nil, fmt.Errorf("analytics: bodegas: %w", err)
	}

	warehouses := make([]dto.WarehouseRollupDTO, 0, len(rows))
	for _, row := range rows {
		info := uc.warehouses.Info(row.WarehouseID)
		tz := info.Timezone
		if tz == "" {
			tz = "Unknown"
		}
		warehouses = append(warehouses, dto.WarehouseRollupDTO{
			WarehouseID:       row.WarehouseID,
			WarehouseName:     info.Name,
			Timezone:          tz,
			InboundEvents:     row.InboundEvents,
			InboundQty:        row.InboundQty,
			InboundVolumeCBM:  row.InboundVolume,
			OutboundEvents:    row.OutboundEvents,
			OutboundQty:       row.OutboundQty,
			OutboundVolumeCBM: row.OutboundVolume,
			UniqueSKUs:        row.SKUs,
			UniqueCustomers:   row.Customers,
		})
	}
	return warehouses, nil
}
