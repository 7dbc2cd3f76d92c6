package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// ProductVolume volumen conocido de un producto, para enriquecer eventos del inventory log.
type ProductVolume struct {
	Barcode      string
	CustomerCode string
	VolumeCBM    decimal.Decimal
}

// ProductRepository define el puerto de persistencia para el catálogo de productos.
type ProductRepository interface {
	// UpsertProducts inserta o actualiza productos por (barcode, customer_code)
	// y devuelve cuántos registros quedaron escritos.
	UpsertProducts(ctx context.Context, products []entity.Product) (int64, error)

	// ListVolumes devuelve los productos que tienen volumen calculado.
	ListVolumes(ctx context.Context) ([]ProductVolume, error)
}
