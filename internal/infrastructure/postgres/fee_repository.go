package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.FeeRepository = (*FeeRepo)(nil)

// FeeRepo implementación sobre PostgreSQL (usable con pool o tx).
type FeeRepo struct {
	q Querier
}

// NewFeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFeeRepository(q Querier) *FeeRepo {
	return &FeeRepo{q: q}
}

const upsertFeeQuery = `
	INSERT INTO order_fees
		(order_code, customer_code, ship_time, shipping_fee, operation_fee,
		 fuel_surcharge, material_fee, other_fee, total_fee, batch_key, sync_run_id, synced_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (order_code) DO UPDATE SET
		customer_code  = EXCLUDED.customer_code,
		ship_time      = EXCLUDED.ship_time,
		shipping_fee   = EXCLUDED.shipping_fee,
		operation_fee  = EXCLUDED.operation_fee,
		fuel_surcharge = EXCLUDED.fuel_surcharge,
		material_fee   = EXCLUDED.material_fee,
		other_fee      = EXCLUDED.other_fee,
		total_fee      = EXCLUDED.total_fee,
		batch_key      = EXCLUDED.batch_key,
		sync_run_id    = EXCLUDED.sync_run_id,
		synced_at      = EXCLUDED.synced_at`

// UpsertFees inserta o actualiza cargos por order_code (el último import gana).
// batch_key queda registrado para poder reemplazar un archivo completo.
func (r *FeeRepo) UpsertFees(ctx context.Context, fees []entity.OrderFee) (int64, error) {
	var written int64
	for _, f := range fees {
		_, err := r.q.Exec(ctx, upsertFeeQuery,
			f.OrderCode, f.CustomerCode, f.ShipTime, f.ShippingFee, f.OperationFee,
			f.FuelSurcharge, f.MaterialFee, f.OtherFee, f.TotalFee, f.BatchKey, f.SyncRunID, f.SyncedAt,
		)
		if err != nil {
			return written, fmt.Errorf("upsert fee %s: %w", f.OrderCode, err)
		}
		written++
	}
	return written, nil
}

// DeleteByBatchKey borra los cargos de un lote (archivo).
func (r *FeeRepo) DeleteByBatchKey(ctx context.Context, batchKey string) (int64, error) {
	query := `DELETE FROM order_fees WHERE batch_key = $1`
	tag, err := r.q.Exec(ctx, query, batchKey)
	if err != nil {
		return 0, fmt.Errorf("delete fee batch %s: %w", batchKey, err)
	}
	return tag.RowsAffected(), nil
}

// SummaryByCustomer agrega los cargos por cliente sobre ship_time, total descendente.
func (r *FeeRepo) SummaryByCustomer(ctx context.Context, from, to *time.Time) ([]repository.FeeSummaryResult, error) {
	query := `
		SELECT
			customer_code,
			COUNT(*) AS order_count,
			COALESCE(SUM(shipping_fee), 0)   AS shipping_fee,
			COALESCE(SUM(operation_fee), 0)  AS operation_fee,
			COALESCE(SUM(fuel_surcharge), 0) AS fuel_surcharge,
			COALESCE(SUM(material_fee), 0)   AS material_fee,
			COALESCE(SUM(other_fee), 0)      AS other_fee,
			COALESCE(SUM(COALESCE(total_fee,
				COALESCE(shipping_fee, 0) + COALESCE(operation_fee, 0) +
				COALESCE(fuel_surcharge, 0) + COALESCE(material_fee, 0) +
				COALESCE(other_fee, 0))), 0) AS total_fee
		FROM order_fees`
	args := []any{}
	pos := 1
	conds := []string{}
	if from != nil {
		conds = append(conds, fmt.Sprintf("ship_time >= $%d", pos))
		args = append(args, *from)
		pos++
	}
	if to != nil {
		conds = append(conds, fmt.Sprintf("ship_time <= $%d", pos))
		args = append(args, *to)
		pos++
	}
	query += whereClause(conds)
	query += `
		GROUP BY customer_code
		ORDER BY total_fee DESC, customer_code ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fee summary: %w", err)
	}
	defer rows.Close()

	var list []repository.FeeSummaryResult
	for rows.Next() {
		var s repository.FeeSummaryResult
		if err := rows.Scan(&s.CustomerCode, &s.OrderCount, &s.ShippingFee, &s.OperationFee,
			&s.FuelSurcharge, &s.MaterialFee, &s.OtherFee, &s.TotalFee); err != nil {
			return nil, fmt.Errorf("scan fee summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
