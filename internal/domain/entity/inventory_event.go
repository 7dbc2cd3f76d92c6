package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direcciones de un evento de inventario.
const (
	DirectionInbound  = "inbound"  // entrada a bodega
	DirectionOutbound = "outbound" // salida de bodega
)

// Orígenes de un evento de inventario.
const (
	SourceWmsOutbound = "wms_outbound" // órdenes de salida del WMS
	SourceWmsInbound  = "wms_inbound"  // recepciones del WMS
	SourceWmsInvLog   = "wms_invlog"   // inventory log del WMS (entradas y salidas)
	SourceExcel       = "excel"        // archivos Excel subidos manualmente
)

// InventoryEvent representa un movimiento de inventario normalizado, sin importar su origen.
// NaturalKey identifica el registro en el upstream; junto con Source forma la clave de upsert.
type InventoryEvent struct {
	ID             int64
	Direction      string
	OccurredAt     time.Time
	WarehouseID    string
	CustomerCode   string
	ProductBarcode string
	Quantity       int64
	VolumeCBM      *decimal.Decimal // nil cuando el origen no trae dimensiones
	Source         string
	NaturalKey     string
	BatchKey       string // nombre del archivo para origen excel; vacío en los demás
	SyncRunID      uuid.UUID
	SyncedAt       time.Time
}
