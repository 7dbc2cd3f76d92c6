package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas e índices si no existen. Todas las sentencias son idempotentes,
// así que es seguro ejecutarlo en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS inventory_events (
			id              BIGSERIAL PRIMARY KEY,
			direction       VARCHAR(10) NOT NULL,
			occurred_at     TIMESTAMPTZ NOT NULL,
			warehouse_id    VARCHAR(20) NOT NULL,
			customer_code   VARCHAR(50) NOT NULL DEFAULT '',
			product_barcode VARCHAR(200) NOT NULL DEFAULT '',
			quantity        BIGINT NOT NULL,
			volume_cbm      NUMERIC(18,6),
			source          VARCHAR(20) NOT NULL,
			natural_key     VARCHAR(250) NOT NULL,
			batch_key       VARCHAR(500) NOT NULL DEFAULT '',
			sync_run_id     UUID NOT NULL,
			synced_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (source, natural_key)
		)`,
		// Índices compuestos para las consultas analíticas (dirección + rango de fechas + dimensión)
		`CREATE INDEX IF NOT EXISTS idx_events_direction_occurred
			ON inventory_events (direction, occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_direction_warehouse_occurred
			ON inventory_events (direction, warehouse_id, occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_warehouse_direction_occurred
			ON inventory_events (warehouse_id, direction, occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_direction_customer_occurred
			ON inventory_events (direction, customer_code, occurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_barcode_direction
			ON inventory_events (product_barcode, direction)`,
		`CREATE INDEX IF NOT EXISTS idx_events_source_batch
			ON inventory_events (source, batch_key)`,

		`CREATE TABLE IF NOT EXISTS products (
			id             BIGSERIAL PRIMARY KEY,
			barcode        VARCHAR(200) NOT NULL,
			reference_no   VARCHAR(200) NOT NULL DEFAULT '',
			customer_code  VARCHAR(50) NOT NULL DEFAULT '',
			length_cm      NUMERIC(12,4),
			width_cm       NUMERIC(12,4),
			height_cm      NUMERIC(12,4),
			weight_kg      NUMERIC(12,4),
			declared_value NUMERIC(14,4),
			size_unit      VARCHAR(10) NOT NULL DEFAULT '',
			weight_unit    VARCHAR(10) NOT NULL DEFAULT '',
			volume_cbm     NUMERIC(18,6),
			sync_run_id    UUID NOT NULL,
			synced_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (barcode, customer_code)
		)`,

		`CREATE TABLE IF NOT EXISTS order_fees (
			id             BIGSERIAL PRIMARY KEY,
			order_code     VARCHAR(100) NOT NULL,
			customer_code  VARCHAR(50) NOT NULL DEFAULT '',
			ship_time      TIMESTAMPTZ,
			shipping_fee   NUMERIC(14,4),
			operation_fee  NUMERIC(14,4),
			fuel_surcharge NUMERIC(14,4),
			material_fee   NUMERIC(14,4),
			other_fee      NUMERIC(14,4),
			total_fee      NUMERIC(14,4),
			batch_key      VARCHAR(500) NOT NULL DEFAULT '',
			sync_run_id    UUID NOT NULL,
			synced_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (order_code)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_fees_customer_ship
			ON order_fees (customer_code, ship_time)`,

		`CREATE TABLE IF NOT EXISTS sync_logs (
			id             BIGSERIAL PRIMARY KEY,
			run_id         UUID NOT NULL UNIQUE,
			sync_type      VARCHAR(20) NOT NULL,
			status         VARCHAR(10) NOT NULL,
			records_synced BIGINT NOT NULL DEFAULT 0,
			error_message  TEXT NOT NULL DEFAULT '',
			started_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			finished_at    TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sync_logs_started_at
			ON sync_logs (started_at DESC)`,

		`CREATE TABLE IF NOT EXISTS warehouse_capacities (
			warehouse_id       VARCHAR(20) PRIMARY KEY,
			total_capacity_cbm NUMERIC(18,6) NOT NULL DEFAULT 0,
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres.Migrate: %w", err)
		}
	}
	return nil
}
