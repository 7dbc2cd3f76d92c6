package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// SyncLogRepository define el puerto de persistencia para la bitácora de sincronizaciones.
type SyncLogRepository interface {
	// Create registra una ejecución recién iniciada (status running) y asigna su ID.
	Create(ctx context.Context, log *entity.SyncLog) error

	// Finish cierra una ejecución por run_id con el estado final, el conteo de registros
	// y el mensaje de error (vacío en caso de éxito).
	Finish(ctx context.Context, runID uuid.UUID, status string, recordsSynced int64, errorMessage string) error

	// List devuelve las ejecuciones más recientes primero. syncType vacío devuelve todas.
	List(ctx context.Context, limit int, syncType string) ([]entity.SyncLog, error)
}
