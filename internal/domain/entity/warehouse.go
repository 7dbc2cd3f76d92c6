package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseCapacity capacidad total configurada de una bodega, en m³.
// Capacity cero o negativa se trata como "sin configurar" en los cálculos de utilización.
type WarehouseCapacity struct {
	WarehouseID      string
	TotalCapacityCBM decimal.Decimal
	UpdatedAt        time.Time
}
