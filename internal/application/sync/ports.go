package sync

import (
	"context"

	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: o se escriben todos los
// registros de una corrida o ninguno. La bitácora de sincronización queda
// fuera a propósito, debe sobrevivir a un rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.EventRepository,
		productRepo repository.ProductRepository,
		feeRepo repository.FeeRepository,
	) error) error
}
