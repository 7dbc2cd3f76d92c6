package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Disparos de sincronización ────────────────────────────────────────────────

// OutboundSyncRequest parámetros de POST /api/sync/outbound. Todos opcionales;
// fechas en formato YYYY-MM-DD o YYYY-MM-DD HH:MM:SS.
type OutboundSyncRequest struct {
	CreateTimeFrom string `query:"create_time_from"`
	CreateTimeTo   string `query:"create_time_to"`
	ShipTimeFrom   string `query:"ship_time_from"`
	ShipTimeTo     string `query:"ship_time_to"`
}

// InboundSyncRequest parámetros de POST /api/sync/inbound.
type InboundSyncRequest struct {
	CreateTimeFrom  string `query:"create_time_from"`
	CreateTimeTo    string `query:"create_time_to"`
	DateShelvesFrom string `query:"date_shelves_from"` // fecha de colocación en estantería
	DateShelvesTo   string `query:"date_shelves_to"`
}

// InvLogSyncRequest parámetros de POST /api/sync/invlog. El rango es obligatorio.
type InvLogSyncRequest struct {
	DateFrom     string `query:"date_from"`
	DateTo       string `query:"date_to"`
	WarehouseID  string `query:"warehouse_id"`
	CustomerCode string `query:"customer_code"`
}

// SyncStartedDTO respuesta 202 de los disparos: la corrida quedó en marcha y se
// puede seguir por /api/sync/logs con el run_id devuelto.
type SyncStartedDTO struct {
	Status   string    `json:"status"` // "started"
	RunID    uuid.UUID `json:"run_id"`
	SyncType string    `json:"sync_type"`
}

// ── Bitácora ──────────────────────────────────────────────────────────────────

// SyncLogsRequest parámetros de GET /api/sync/logs.
type SyncLogsRequest struct {
	Limit    int    `query:"limit"`     // 1..100, default 20
	SyncType string `query:"sync_type"` // opcional: filtra por tipo de corrida
}

// SyncLogDTO una corrida registrada en la bitácora.
type SyncLogDTO struct {
	ID            int64      `json:"id"`
	RunID         uuid.UUID  `json:"run_id"`
	SyncType      string     `json:"sync_type"`
	Status        string     `json:"status"` // running, success o failed
	RecordsSynced int64      `json:"records_synced"`
	ErrorMessage  string     `json:"error_message"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at"` // null mientras está en curso
}

// ── Importación de Excel ──────────────────────────────────────────────────────

// ImportResultDTO respuesta de POST /api/sync/excel-upload.
type ImportResultDTO struct {
	Status          string    `json:"status"` // "success"
	RunID           uuid.UUID `json:"run_id"`
	Filename        string    `json:"filename"` // nombre con el que quedó guardado en uploads/
	Template        string    `json:"template"` // plantilla detectada (horizontal o fee_breakdown)
	RecordsImported int64     `json:"records_imported"`
	RowsSkipped     int       `json:"rows_skipped"`
}
