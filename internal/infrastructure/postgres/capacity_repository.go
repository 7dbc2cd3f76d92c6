package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.CapacityRepository = (*CapacityRepo)(nil)

// CapacityRepo implementación sobre PostgreSQL (usable con pool o tx).
type CapacityRepo struct {
	q Querier
}

// NewCapacityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCapacityRepository(q Querier) *CapacityRepo {
	return &CapacityRepo{q: q}
}

// Upsert crea o actualiza la capacidad de una bodega.
func (r *CapacityRepo) Upsert(ctx context.Context, capacity entity.WarehouseCapacity) error {
	query := `
		INSERT INTO warehouse_capacities (warehouse_id, total_capacity_cbm, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (warehouse_id) DO UPDATE SET
			total_capacity_cbm = EXCLUDED.total_capacity_cbm,
			updated_at         = now()`
	if _, err := r.q.Exec(ctx, query, capacity.WarehouseID, capacity.TotalCapacityCBM); err != nil {
		return fmt.Errorf("upsert capacity %s: %w", capacity.WarehouseID, err)
	}
	return nil
}

// GetAll devuelve todas las capacidades configuradas.
func (r *CapacityRepo) GetAll(ctx context.Context) ([]entity.WarehouseCapacity, error) {
	query := `
		SELECT warehouse_id, total_capacity_cbm, updated_at
		FROM warehouse_capacities
		ORDER BY warehouse_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list capacities: %w", err)
	}
	defer rows.Close()

	var list []entity.WarehouseCapacity
	for rows.Next() {
		var c entity.WarehouseCapacity
		if err := rows.Scan(&c.WarehouseID, &c.TotalCapacityCBM, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan capacity: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
