package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderFee cargos facturados por orden, importados desde Excel (todos en USD).
// Según la plantilla, viene el total con "otros cargos" o el desglose por concepto.
type OrderFee struct {
	ID            int64
	OrderCode     string
	CustomerCode  string
	ShipTime      *time.Time
	ShippingFee   *decimal.Decimal // flete / transporte
	OperationFee  *decimal.Decimal // operación
	FuelSurcharge *decimal.Decimal // recargo por combustible
	MaterialFee   *decimal.Decimal // material de empaque
	OtherFee      *decimal.Decimal
	TotalFee      *decimal.Decimal
	BatchKey      string // nombre del archivo de origen
	SyncRunID     uuid.UUID
	SyncedAt      time.Time
}

// EffectiveTotal devuelve el total de la orden: TotalFee si viene en el archivo,
// si no la suma de los conceptos presentes.
func (f OrderFee) EffectiveTotal() decimal.Decimal {
	if f.TotalFee != nil {
		return *f.TotalFee
	}
	total := decimal.Zero
	for _, part := range []*decimal.Decimal{f.ShippingFee, f.OperationFee, f.FuelSurcharge, f.MaterialFee, f.OtherFee} {
		if part != nil {
			total = total.Add(*part)
		}
	}
	return total
}
