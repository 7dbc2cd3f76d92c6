package repository

import (
	"context"
	"time"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para eventos de inventario.
type EventRepository interface {
	// UpsertEvents inserta o actualiza eventos por (source, natural_key) y devuelve
	// cuántos registros quedaron escritos. Un re-sync conserva la copia más reciente del upstream.
	UpsertEvents(ctx context.Context, events []entity.InventoryEvent) (int64, error)

	// ReplaceWindow reemplaza los eventos de un source y dirección dentro de la ventana
	// [from, to]: borra lo existente en el rango y escribe los eventos nuevos.
	// Así las eliminaciones del upstream no quedan huérfanas localmente.
	ReplaceWindow(ctx context.Context, source, direction string, from, to time.Time, events []entity.InventoryEvent) (int64, error)

	// DeleteByBatchKey borra los eventos de un lote (archivo) y devuelve cuántos eliminó.
	DeleteByBatchKey(ctx context.Context, source, batchKey string) (int64, error)
}
