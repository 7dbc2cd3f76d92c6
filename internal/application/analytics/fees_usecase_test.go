package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/turnover-api/internal/application/analytics"
	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.FeeRepository = (*fakeFeeRepo)(nil)

type fakeFeeRepo struct {
	rows []repository.FeeSummaryResult
	from *time.Time
	to   *time.Time
}

func (f *fakeFeeRepo) UpsertFees(context.Context, []entity.OrderFee) (int64, error) {
	return 0, nil
}

func (f *fakeFeeRepo) DeleteByBatchKey(context.Context, string) (int64, error) {
	return 0, nil
}

func (f *fakeFeeRepo) SummaryByCustomer(_ context.Context, from, to *time.Time) ([]repository.FeeSummaryResult, error) {
	f.from = from
	f.to = to
	return f.rows, nil
}

func TestFeeGetSummary_RedondeaYTotaliza(t *testing.T) {
	repo := &fakeFeeRepo{
		rows: []repository.FeeSummaryResult{
			{
				CustomerCode:  "ACME",
				OrderCount:    12,
				ShippingFee:   decimal.RequireFromString("100.456"),
				OperationFee:  decimal.RequireFromString("20.1"),
				FuelSurcharge: decimal.RequireFromString("5.005"),
				MaterialFee:   decimal.Zero,
				OtherFee:      decimal.RequireFromString("0.004"),
				TotalFee:      decimal.RequireFromString("125.565"),
			},
			{
				CustomerCode: "BETA",
				OrderCount:   3,
				ShippingFee:  decimal.RequireFromString("30"),
				TotalFee:     decimal.RequireFromString("30.001"),
			},
		},
	}
	uc := appanalytics.NewFeeReportUseCase(repo)

	res, err := uc.GetSummary(context.Background(), dto.FeeSummaryRequest{
		DateFrom: "2026-04-01",
		DateTo:   "2026-04-30",
	})
	require.NoError(t, err)

	require.Len(t, res.Customers, 2)
	acme := res.Customers[0]
	assert.Equal(t, "ACME", acme.CustomerCode)
	assert.Equal(t, int64(12), acme.OrderCount)
	assert.Equal(t, "100.46", acme.ShippingFee.String())
	assert.Equal(t, "5.01", acme.FuelSurcharge.String())
	assert.Equal(t, "0", acme.OtherFee.String())
	assert.Equal(t, "125.57", acme.TotalFee.String())

	// El gran total suma los crudos y redondea una sola vez
	assert.Equal(t, "155.57", res.TotalUSD.String())
	assert.Equal(t, dto.PeriodDTO{DateFrom: "2026-04-01", DateTo: "2026-04-30"}, res.Period)

	require.NotNil(t, repo.to)
	assert.Equal(t, time.Date(2026, 4, 30, 23, 59, 59, 0, time.UTC), *repo.to)
}

func TestFeeGetSummary_RangoAbierto(t *testing.T) {
	repo := &fakeFeeRepo{}
	uc := appanalytics.NewFeeReportUseCase(repo)

	res, err := uc.GetSummary(context.Background(), dto.FeeSummaryRequest{})
	require.NoError(t, err)

	assert.Nil(t, repo.from)
	assert.Nil(t, repo.to)
	assert.Empty(t, res.Customers)
	assert.Equal(t, "0", res.TotalUSD.String())
}

func TestFeeGetSummary_FechaInvalida(t *testing.T) {
	uc := appanalytics.NewFeeReportUseCase(&fakeFeeRepo{})

	_, err := uc.GetSummary(context.Background(), dto.FeeSummaryRequest{DateTo: "2026/04/30"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
