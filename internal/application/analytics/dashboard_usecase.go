// Package analytics contiene los casos de uso de lectura sobre el flujo
// unificado de inventario: panel, serie temporal, rotación, comparativos
// por dimensión y resumen de tarifas.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel de inventario.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No toca inventory_events directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO del período filtrado.
//
// Dos llamadas en paralelo:
//  1. GetFlowTotals(filtro) → totales por dirección + conteos de actividad
//  2. CountCatalogSKUs      → total del catálogo, sin filtros
func (uc *DashboardUseCase) GetSummary(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardSummaryDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, req.WarehouseID, req.CustomerCode)
	if err != nil {
		return nil, err
	}

	type totalsResult struct {
		totals *repository.FlowTotalsResult
		err    error
	}
	type catalogResult struct {
		count int64
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	catalogCh := make(chan catalogResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetFlowTotals(ctx, filter)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountCatalogSKUs(ctx)
		catalogCh <- catalogResult{count, err}
	}()

	totals := <-totalsCh
	catalog := <-catalogCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de flujo: %w", totals.err)
	}
	if catalog.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", catalog.err)
	}

	t := totals.totals
	return &dto.DashboardSummaryDTO{
		Period: periodOf(filter),
		Inbound: dto.DirectionTotalsDTO{
			TotalEvents:    t.InboundEvents,
			TotalQty:       t.InboundQty,
			TotalVolumeCBM: t.InboundVolume,
			UniqueSKUs:     t.InboundSKUs,
		},
		Outbound: dto.DirectionTotalsDTO{
			TotalEvents:    t.OutboundEvents,
			TotalQty:       t.OutboundQty,
			TotalVolumeCBM: t.OutboundVolume,
			UniqueSKUs:     t.OutboundSKUs,
		},
		UniqueCustomers:  t.ActiveCustomers,
		ActiveSKUs:       t.ActiveSKUs,
		TotalProducts:    catalog.count,
		ActiveWarehouses: t.ActiveWarehouses,
	}, nil
}
