package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/pkg/config"
)

var hundred = decimal.NewFromInt(100)

// WarehouseUseCase capacidades configuradas y ocupación estimada por bodega.
type WarehouseUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	capacityRepo  repository.CapacityRepository
	warehouses    config.WarehouseDirectory
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	analyticsRepo repository.AnalyticsRepository,
	capacityRepo repository.CapacityRepository,
	warehouses config.WarehouseDirectory,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		analyticsRepo: analyticsRepo,
		capacityRepo:  capacityRepo,
		warehouses:    warehouses,
	}
}

// ListCapacities devuelve la capacidad de todas las bodegas conocidas. Las del
// directorio aparecen siempre, con capacidad 0 mientras no se configuren.
func (uc *WarehouseUseCase) ListCapacities(ctx context.Context) ([]dto.WarehouseCapacityDTO, error) {
	rows, err := uc.capacityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("warehouses: capacidades: %w", err)
	}

	byID := make(map[string]dto.WarehouseCapacityDTO)
	for id := range uc.warehouses.ByID {
		byID[id] = dto.WarehouseCapacityDTO{
			WarehouseID:      id,
			WarehouseName:    uc.warehouses.Info(id).Name,
			TotalCapacityCBM: decimal.Zero,
		}
	}
	for _, row := range rows {
		byID[row.WarehouseID] = dto.WarehouseCapacityDTO{
			WarehouseID:      row.WarehouseID,
			WarehouseName:    uc.warehouses.Info(row.WarehouseID).Name,
			TotalCapacityCBM: row.TotalCapacityCBM,
		}
	}

	list := make([]dto.WarehouseCapacityDTO, 0, len(byID))
	for _, c := range byID {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].WarehouseID < list[j].WarehouseID })
	return list, nil
}

// SetCapacity crea o actualiza la capacidad total de una bodega.
func (uc *WarehouseUseCase) SetCapacity(ctx context.Context, req dto.SetCapacityRequest) (*dto.WarehouseCapacityDTO, error) {
	if req.WarehouseID == "" {
		return nil, fmt.Errorf("warehouse_id requerido: %w", domain.ErrInvalidInput)
	}
	if req.TotalCapacityCBM.IsNegative() {
		return nil, fmt.Errorf("total_capacity_cbm no puede ser negativa: %w", domain.ErrInvalidInput)
	}

	err := uc.capacityRepo.Upsert(ctx, entity.WarehouseCapacity{
		WarehouseID:      req.WarehouseID,
		TotalCapacityCBM: req.TotalCapacityCBM,
	})
	if err != nil {
		return nil, fmt.Errorf("warehouses: guardar capacidad: %w", err)
	}

	return &dto.WarehouseCapacityDTO{
		WarehouseID:      req.WarehouseID,
		WarehouseName:    uc.warehouses.Info(req.WarehouseID).Name,
		TotalCapacityCBM: req.TotalCapacityCBM,
	}, nil
}

// GetUtilization compara el volumen neto acumulado contra la capacidad de cada
// bodega. Aparecen las bodegas del directorio, las que tienen capacidad
// configurada y las que registran eventos.
//
// Dos llamadas en paralelo:
//  1. GetNetVolumeByWarehouse → volumen neto histórico por bodega
//  2. capacityRepo.GetAll     → capacidades configuradas
func (uc *WarehouseUseCase) GetUtilization(ctx context.Context) ([]dto.WarehouseUtilizationDTO, error) {
	type netResult struct {
		rows []repository.WarehouseNetVolumeResult
		err  error
	}
	type capResult struct {
		rows []entity.WarehouseCapacity
		err  error
	}

	netCh := make(chan netResult, 1)
	capCh := make(chan capResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetNetVolumeByWarehouse(ctx)
		netCh <- netResult{rows, err}
	}()
	go func() {
		rows, err := uc.capacityRepo.GetAll(ctx)
		capCh <- capResult{rows, err}
	}()

	net := <-netCh
	caps := <-capCh

	if net.err != nil {
		return nil, fmt.Errorf("warehouses: volumen neto: %w", net.err)
	}
	if caps.err != nil {
		return nil, fmt.Errorf("warehouses: capacidades: %w", caps.err)
	}

	capacities := make(map[string]decimal.Decimal, len(caps.rows))
	for _, c := range caps.rows {
		capacities[c.WarehouseID] = c.TotalCapacityCBM
	}
	netVolumes := make(map[string]decimal.Decimal, len(net.rows))
	for _, n := range net.rows {
		netVolumes[n.WarehouseID] = n.NetVolume
	}

	ids := make(map[string]bool)
	for id := range uc.warehouses.ByID {
		ids[id] = true
	}
	for id := range capacities {
		ids[id] = true
	}
	for id := range netVolumes {
		ids[id] = true
	}

	list := make([]dto.WarehouseUtilizationDTO, 0, len(ids))
	for id := range ids {
		capacity := capacities[id]
		row := dto.WarehouseUtilizationDTO{
			WarehouseID:      id,
			WarehouseName:    uc.warehouses.Info(id).Name,
			NetVolumeCBM:     netVolumes[id],
			TotalCapacityCBM: capacity,
		}
		if capacity.IsPositive() {
			row.CapacitySet = true
			pct := clampPct(netVolumes[id].Div(capacity).Mul(hundred).Round(2))
			row.UtilizationPct = &pct
		}
		list = append(list, row)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].WarehouseID < list[j].WarehouseID })
	return list, nil
}

// clampPct recorta el porcentaje de ocupación al rango 0-100.
func clampPct(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
