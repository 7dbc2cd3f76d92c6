package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/turnover-api/internal/application/sync"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ sync.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// La bitácora de sincronización queda fuera a propósito: debe sobrevivir al rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	eventRepo repository.EventRepository,
	productRepo repository.ProductRepository,
	feeRepo repository.FeeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	eventRepo := NewEventRepository(tx)
	productRepo := NewProductRepository(tx)
	feeRepo := NewFeeRepository(tx)

	if err := fn(eventRepo, productRepo, feeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
