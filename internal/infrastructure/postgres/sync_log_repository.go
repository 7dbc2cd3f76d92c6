package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.SyncLogRepository = (*SyncLogRepo)(nil)

// SyncLogRepo implementación sobre PostgreSQL (usable con pool o tx).
type SyncLogRepo struct {
	q Querier
}

// NewSyncLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSyncLogRepository(q Querier) *SyncLogRepo {
	return &SyncLogRepo{q: q}
}

// Create registra una ejecución recién iniciada y asigna el ID generado.
func (r *SyncLogRepo) Create(ctx context.Context, log *entity.SyncLog) error {
	query := `
		INSERT INTO sync_logs (run_id, sync_type, status, records_synced, error_message, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		log.RunID, log.SyncType, log.Status, log.RecordsSynced, log.ErrorMessage, log.StartedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("create sync log: %w", err)
	}
	return nil
}

// Finish cierra la ejecución identificada por run_id.
func (r *SyncLogRepo) Finish(ctx context.Context, runID uuid.UUID, status string, recordsSynced int64, errorMessage string) error {
	query := `
		UPDATE sync_logs
		SET status = $2, records_synced = $3, error_message = $4, finished_at = now()
		WHERE run_id = $1`
	tag, err := r.q.Exec(ctx, query, runID, status, recordsSynced, errorMessage)
	if err != nil {
		return fmt.Errorf("finish sync log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las ejecuciones más recientes primero, opcionalmente filtradas por tipo.
func (r *SyncLogRepo) List(ctx context.Context, limit int, syncType string) ([]entity.SyncLog, error) {
	query := `
		SELECT id, run_id, sync_type, status, records_synced, error_message, started_at, finished_at
		FROM sync_logs`
	args := []any{}
	pos := 1
	if syncType != "" {
		query += fmt.Sprintf(" WHERE sync_type = $%d", pos)
		args = append(args, syncType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY started_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sync logs: %w", err)
	}
	defer rows.Close()

	var list []entity.SyncLog
	for rows.Next() {
		var l entity.SyncLog
		if err := rows.Scan(&l.ID, &l.RunID, &l.SyncType, &l.Status,
			&l.RecordsSynced, &l.ErrorMessage, &l.StartedAt, &l.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan sync log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
