package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/turnover-api/internal/application/analytics"
	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

func TestGetSummary_CombinaFlujoYCatalogo(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totals: &repository.FlowTotalsResult{
			InboundEvents:    12,
			OutboundEvents:   30,
			InboundQty:       120,
			OutboundQty:      340,
			InboundVolume:    decimal.RequireFromString("3.5"),
			OutboundVolume:   decimal.RequireFromString("8.25"),
			InboundSKUs:      9,
			OutboundSKUs:     14,
			ActiveCustomers:  5,
			ActiveSKUs:       17,
			ActiveWarehouses: 2,
		},
		catalogCount: 412,
	}
	uc := appanalytics.NewDashboardUseCase(repo)

	res, err := uc.GetSummary(context.Background(), dto.DashboardRequest{
		DateFrom:     "2026-02-01",
		DateTo:       "2026-02-28",
		CustomerCode: "ACME",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Inbound.TotalEvents)
	assert.Equal(t, int64(120), res.Inbound.TotalQty)
	assert.Equal(t, "3.5", res.Inbound.TotalVolumeCBM.String())
	assert.Equal(t, int64(9), res.Inbound.UniqueSKUs)

	assert.Equal(t, int64(30), res.Outbound.TotalEvents)
	assert.Equal(t, int64(340), res.Outbound.TotalQty)
	assert.Equal(t, "8.25", res.Outbound.TotalVolumeCBM.String())
	assert.Equal(t, int64(14), res.Outbound.UniqueSKUs)

	assert.Equal(t, int64(5), res.UniqueCustomers)
	assert.Equal(t, int64(17), res.ActiveSKUs)
	assert.Equal(t, int64(412), res.TotalProducts, "el catálogo viene del conteo sin filtros")
	assert.Equal(t, int64(2), res.ActiveWarehouses)
	assert.Equal(t, dto.PeriodDTO{DateFrom: "2026-02-01", DateTo: "2026-02-28"}, res.Period)

	assert.Equal(t, "ACME", repo.flowFilter.CustomerCode, "el filtro llega al repositorio")
}

func TestGetSummary_ErroresDeRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")

	uc := appanalytics.NewDashboardUseCase(&fakeAnalyticsRepo{totalsErr: boom})
	_, err := uc.GetSummary(context.Background(), dto.DashboardRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "totales de flujo")

	uc = appanalytics.NewDashboardUseCase(&fakeAnalyticsRepo{
		totals:     &repository.FlowTotalsResult{},
		catalogErr: boom,
	})
	_, err = uc.GetSummary(context.Background(), dto.DashboardRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "catálogo")
}

func TestGetSummary_FechaInvalida(t *testing.T) {
	uc := appanalytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	_, err := uc.GetSummary(context.Background(), dto.DashboardRequest{DateFrom: "hoy"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
