package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de sincronización.
const (
	SyncTypeProducts = "products"
	SyncTypeOutbound = "outbound"
	SyncTypeInbound  = "inbound"
	SyncTypeInvLog   = "invlog"
	SyncTypeDaily    = "daily"
	SyncTypeExcel    = "excel"
)

// Estados de una sincronización.
const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// ValidSyncType indica si el tipo corresponde a una sincronización conocida.
func ValidSyncType(t string) bool {
	switch t {
	case SyncTypeProducts, SyncTypeOutbound, SyncTypeInbound, SyncTypeInvLog, SyncTypeDaily, SyncTypeExcel:
		return true
	}
	return false
}

// SyncLog bitácora de una ejecución de sincronización.
// RunID es el token que se devuelve al iniciar la ejecución y permite correlacionarla después.
type SyncLog struct {
	ID            int64
	RunID         uuid.UUID
	SyncType      string
	Status        string
	RecordsSynced int64
	ErrorMessage  string
	StartedAt     time.Time
	FinishedAt    *time.Time // nil mientras está en curso
}
