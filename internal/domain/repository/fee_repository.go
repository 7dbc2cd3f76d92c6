package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// FeeSummaryResult resultado crudo del resumen de cargos por cliente.
type FeeSummaryResult struct {
	CustomerCode  string
	OrderCount    int64
	ShippingFee   decimal.Decimal
	OperationFee  decimal.Decimal
	FuelSurcharge decimal.Decimal
	MaterialFee   decimal.Decimal
	OtherFee      decimal.Decimal
	TotalFee      decimal.Decimal
}

// FeeRepository define el puerto de persistencia para cargos por orden.
type FeeRepository interface {
	// UpsertFees inserta o actualiza cargos por order_code (el último import
	// gana) y devuelve cuántos registros quedaron escritos.
	UpsertFees(ctx context.Context, fees []entity.OrderFee) (int64, error)

	// DeleteByBatchKey borra los cargos de un lote (archivo) y devuelve cuántos eliminó.
	DeleteByBatchKey(ctx context.Context, batchKey string) (int64, error)

	// SummaryByCustomer agrega los cargos por cliente sobre ship_time en el rango dado
	// (nil = sin límite por ese extremo), ordenado por total descendente.
	SummaryByCustomer(ctx context.Context, from, to *time.Time) ([]FeeSummaryResult, error)
}
