package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación sobre PostgreSQL (usable con pool o tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const upsertEventQuery = `
	INSERT INTO inventory_events
		(direction, occurred_at, warehouse_id, customer_code, product_barcode,
		 quantity, volume_cbm, source, natural_key, batch_key, sync_run_id, synced_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (source, natural_key) DO UPDATE SET
		direction       = EXCLUDED.direction,
		occurred_at     = EXCLUDED.occurred_at,
		warehouse_id    = EXCLUDED.warehouse_id,
		customer_code   = EXCLUDED.customer_code,
		product_barcode = EXCLUDED.product_barcode,
		quantity        = EXCLUDED.quantity,
		volume_cbm      = EXCLUDED.volume_cbm,
		batch_key       = EXCLUDED.batch_key,
		sync_run_id     = EXCLUDED.sync_run_id,
		synced_at       = EXCLUDED.synced_at`

// UpsertEvents inserta o actualiza eventos por (source, natural_key).
// Un re-sync del mismo registro conserva la copia más reciente del upstream.
func (r *EventRepo) UpsertEvents(ctx context.Context, events []entity.InventoryEvent) (int64, error) {
	var written int64
	for _, e := range events {
		_, err := r.q.Exec(ctx, upsertEventQuery,
			e.Direction, e.OccurredAt, e.WarehouseID, e.CustomerCode, e.ProductBarcode,
			e.Quantity, e.VolumeCBM, e.Source, e.NaturalKey, e.BatchKey, e.SyncRunID, e.SyncedAt,
		)
		if err != nil {
			return written, fmt.Errorf("upsert event %s/%s: %w", e.Source, e.NaturalKey, err)
		}
		written++
	}
	return written, nil
}

// ReplaceWindow borra los eventos del source y dirección dentro de [from, to] y escribe
// los nuevos. El insert sigue siendo upsert: si un registro movió su fecha hacia adentro
// de la ventana, su clave natural puede existir fuera de ella.
func (r *EventRepo) ReplaceWindow(ctx context.Context, source, direction string, from, to time.Time, events []entity.InventoryEvent) (int64, error) {
	query := `
		DELETE FROM inventory_events
		WHERE source = $1 AND direction = $2 AND occurred_at >= $3 AND occurred_at <= $4`
	if _, err := r.q.Exec(ctx, query, source, direction, from, to); err != nil {
		return 0, fmt.Errorf("delete window %s/%s: %w", source, direction, err)
	}
	return r.UpsertEvents(ctx, events)
}

// DeleteByBatchKey borra los eventos de un lote (archivo).
func (r *EventRepo) DeleteByBatchKey(ctx context.Context, source, batchKey string) (int64, error) {
	query := `DELETE FROM inventory_events WHERE source = $1 AND batch_key = $2`
	tag, err := r.q.Exec(ctx, query, source, batchKey)
	if err != nil {
		return 0, fmt.Errorf("delete batch %s: %w", batchKey, err)
	}
	return tag.RowsAffected(), nil
}
