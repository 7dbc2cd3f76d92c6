package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

// FeeReportUseCase resumen de cargos por cliente a partir de los Excel importados.
type FeeReportUseCase struct {
	feeRepo repository.FeeRepository
}

// NewFeeReportUseCase construye el caso de uso.
func NewFeeReportUseCase(feeRepo repository.FeeRepository) *FeeReportUseCase {
	return &FeeReportUseCase{feeRepo: feeRepo}
}

// GetSummary agrega los cargos por cliente sobre la fecha de despacho (ship_time).
func (uc *FeeReportUseCase) GetSummary(ctx context.Context, req dto.FeeSummaryRequest) (*dto.FeeSummaryDTO, error) {
	filter, err := buildFilter(req.DateFrom, req.DateTo, "", "")
	if err != nil {
		return nil, err
	}

	rows, err := uc.feeRepo.SummaryByCustomer(ctx, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, fmt.Errorf("analytics: tarifas: %w", err)
	}

	var total decimal.Decimal
	customers := make([]dto.CustomerFeesDTO, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, dto.CustomerFeesDTO{
			CustomerCode:  row.CustomerCode,
			OrderCount:    row.OrderCount,
			ShippingFee:   row.ShippingFee.Round(2),
			OperationFee:  row.OperationFee.Round(2),
			FuelSurcharge: row.FuelSurcharge.Round(2),
			MaterialFee:   row.MaterialFee.Round(2),
			OtherFee:      row.OtherFee.Round(2),
			TotalFee:      row.TotalFee.Round(2),
		})
		total = total.Add(row.TotalFee)
	}

	return &dto.FeeSummaryDTO{
		Period:    periodOf(filter),
		Customers: customers,
		TotalUSD:  total.Round(2),
	}, nil
}
