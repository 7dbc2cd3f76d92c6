package repository

import (
	"context"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// CapacityRepository define el puerto de persistencia para capacidades de bodega.
type CapacityRepository interface {
	// Upsert crea o actualiza la capacidad de una bodega.
	Upsert(ctx context.Context, capacity entity.WarehouseCapacity) error

	// GetAll devuelve todas las capacidades configuradas.
	GetAll(ctx context.Context) ([]entity.WarehouseCapacity, error)
}
