package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const upsertProductQuery = `
	INSERT INTO products
		(barcode, reference_no, customer_code, length_cm, width_cm, height_cm,
		 weight_kg, declared_value, size_unit, weight_unit, volume_cbm, sync_run_id, synced_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (barcode, customer_code) DO UPDATE SET
		reference_no   = EXCLUDED.reference_no,
		length_cm      = EXCLUDED.length_cm,
		width_cm       = EXCLUDED.width_cm,
		height_cm      = EXCLUDED.height_cm,
		weight_kg      = EXCLUDED.weight_kg,
		declared_value = EXCLUDED.declared_value,
		size_unit      = EXCLUDED.size_unit,
		weight_unit    = EXCLUDED.weight_unit,
		volume_cbm     = EXCLUDED.volume_cbm,
		sync_run_id    = EXCLUDED.sync_run_id,
		synced_at      = EXCLUDED.synced_at`

// UpsertProducts inserta o actualiza productos por (barcode, customer_code).
func (r *ProductRepo) UpsertProducts(ctx context.Context, products []entity.Product) (int64, error) {
	var written int64
	for _, p := range products {
		_, err := r.q.Exec(ctx, upsertProductQuery,
			p.Barcode, p.ReferenceNo, p.CustomerCode, p.LengthCM, p.WidthCM, p.HeightCM,
			p.WeightKG, p.DeclaredValue, p.SizeUnit, p.WeightUnit, p.VolumeCBM, p.SyncRunID, p.SyncedAt,
		)
		if err != nil {
			return written, fmt.Errorf("upsert product %s/%s: %w", p.Barcode, p.CustomerCode, err)
		}
		written++
	}
	return written, nil
}

// ListVolumes devuelve los productos con volumen calculado (para enriquecer eventos sin dimensiones).
func (r *ProductRepo) ListVolumes(ctx context.Context) ([]repository.ProductVolume, error) {
	query := `
		SELECT barcode, customer_code, volume_cbm
		FROM products
		WHERE volume_cbm IS NOT NULL
		ORDER BY barcode, customer_code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product volumes: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductVolume
	for rows.Next() {
		var v repository.ProductVolume
		if err := rows.Scan(&v.Barcode, &v.CustomerCode, &v.VolumeCBM); err != nil {
			return nil, fmt.Errorf("scan product volume: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
