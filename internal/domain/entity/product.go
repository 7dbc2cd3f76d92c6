package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product catálogo de productos sincronizado desde el WMS.
// La clave natural es (Barcode, CustomerCode): el mismo barcode puede existir para varios clientes.
type Product struct {
	ID            int64
	Barcode       string
	ReferenceNo   string
	CustomerCode  string
	LengthCM      *decimal.Decimal
	WidthCM       *decimal.Decimal
	HeightCM      *decimal.Decimal
	WeightKG      *decimal.Decimal
	DeclaredValue *decimal.Decimal
	SizeUnit      string
	WeightUnit    string
	VolumeCBM     *decimal.Decimal // largo × ancho × alto / 1e6, redondeado a 6 decimales
	SyncRunID     uuid.UUID
	SyncedAt      time.Time
}

// ComputeVolumeCBM calcula el volumen en m³ a partir de dimensiones en cm.
// Devuelve nil si falta alguna dimensión o alguna no es positiva.
func ComputeVolumeCBM(length, width, height *decimal.Decimal) *decimal.Decimal {
	if length == nil || width == nil || height == nil {
		return nil
	}
	if !length.IsPositive() || !width.IsPositive() || !height.IsPositive() {
		return nil
	}
	v := length.Mul(*width).Mul(*height).Div(decimal.NewFromInt(1_000_000)).Round(6)
	return &v
}
