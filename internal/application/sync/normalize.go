package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/internal/infrastructure/wms"
)

// ──────────────────────────────────────────────
// Normalizadores: registro crudo del WMS → entidad
// ──────────────────────────────────────────────

// normalizeOutbound convierte órdenes de salida (getOrderList) en eventos outbound.
// La cantidad es el número de bultos de la orden, mínimo 1. El volumen sale de las
// medidas de la orden cuando vienen completas. Se descartan registros sin order_id
// o sin ninguna fecha utilizable (ship_time, luego add_time).
func normalizeOutbound(recs []wms.Record, runID uuid.UUID, now time.Time) []entity.InventoryEvent {
	events := make([]entity.InventoryEvent, 0, len(recs))
	for _, rec := range recs {
		key := rec.Str("order_id")
		if key == "" {
			continue
		}
		occurred := rec.Time("ship_time")
		if occurred == nil {
			occurred = rec.Time("add_time")
		}
		if occurred == nil {
			continue
		}
		qty := rec.Int("parcel_quantity")
		if qty < 1 {
			qty = 1
		}
		events = append(events, entity.InventoryEvent{
			Direction:    entity.DirectionOutbound,
			OccurredAt:   *occurred,
			WarehouseID:  rec.Str("warehouse_code"),
			CustomerCode: rec.Str("customer_code"),
			Quantity:     qty,
			VolumeCBM: entity.ComputeVolumeCBM(
				rec.Decimal("order_measure_length"),
				rec.Decimal("order_measure_width"),
				rec.Decimal("order_measure_height"),
			),
			Source:     entity.SourceWmsOutbound,
			NaturalKey: key,
			SyncRunID:  runID,
			SyncedAt:   now,
		})
	}
	return events
}

// normalizeInbound convierte recepciones (getReceivingListForYB) en eventos inbound.
// La cantidad es la primera positiva entre recibido, ubicado y esperado. Las
// recepciones no traen dimensiones, el volumen queda en nil. Se descartan
// registros sin receiving_id o sin fecha (pd_putaway_time, luego receiving_add_time).
func normalizeInbound(recs []wms.Record, runID uuid.UUID, now time.Time) []entity.InventoryEvent {
	events := make([]entity.InventoryEvent, 0, len(recs))
	for _, rec := range recs {
		key := rec.Str("receiving_id")
		if key == "" {
			continue
		}
		occurred := rec.Time("pd_putaway_time")
		if occurred == nil {
			occurred = rec.Time("receiving_add_time")
		}
		if occurred == nil {
			continue
		}
		qty := firstPositive(
			rec.Int("received_qty"),
			rec.Int("shelves_qty"),
			rec.Int("expect_qty"),
		)
		events = append(events, entity.InventoryEvent{
			Direction:    entity.DirectionInbound,
			OccurredAt:   *occurred,
			WarehouseID:  rec.Str("warehouse_code"),
			CustomerCode: rec.Str("customer_code"),
			Quantity:     qty,
			Source:       entity.SourceWmsInbound,
			NaturalKey:   key,
			SyncRunID:    runID,
			SyncedAt:     now,
		})
	}
	return events
}

// normalizeProducts convierte el catálogo (getProductList) en productos.
// Se descartan registros sin barcode. El volumen unitario se calcula aquí,
// en la escritura, para que las consultas analíticas no lo recalculen.
func normalizeProducts(recs []wms.Record, runID uuid.UUID, now time.Time) []entity.Product {
	products := make([]entity.Product, 0, len(recs))
	for _, rec := range recs {
		barcode := rec.Str("product_barcode")
		if barcode == "" {
			continue
		}
		length := rec.Decimal("product_length")
		width := rec.Decimal("product_width")
		height := rec.Decimal("product_height")
		products = append(products, entity.Product{
			Barcode:       barcode,
			ReferenceNo:   rec.Str("reference_no"),
			CustomerCode:  rec.Str("customer_code"),
			LengthCM:      length,
			WidthCM:       width,
			HeightCM:      height,
			WeightKG:      rec.Decimal("product_weight"),
			DeclaredValue: rec.Decimal("product_declared_value"),
			SizeUnit:      rec.Str("size_unit"),
			WeightUnit:    rec.Str("weight_unit"),
			VolumeCBM:     entity.ComputeVolumeCBM(length, width, height),
			SyncRunID:     runID,
			SyncedAt:      now,
		})
	}
	return products
}

// normalizeInvLog convierte movimientos del inventory log (getInventoryLog) en
// eventos. El log opera a nivel SKU: el volumen del evento es el volumen unitario
// del producto por la cantidad movida, por eso recibe el índice de volúmenes del
// catálogo. Se aceptan solo las direcciones inbound y outbound (el campo direction,
// o type si falta); ajustes y conteos se descartan. Los registros sin log_id
// reciben una clave derivada de sus campos para que el upsert siga siendo estable.
func normalizeInvLog(recs []wms.Record, volumes map[volumeKey]decimal.Decimal, runID uuid.UUID, now time.Time) []entity.InventoryEvent {
	events := make([]entity.InventoryEvent, 0, len(recs))
	for _, rec := range recs {
		direction := strings.ToLower(rec.Str("direction"))
		if direction == "" {
			direction = strings.ToLower(rec.Str("type"))
		}
		if direction != entity.DirectionInbound && direction != entity.DirectionOutbound {
			continue
		}
		occurred := rec.Time("warehouse_operation_time")
		if occurred == nil {
			continue
		}
		qty := rec.Int("quantity")
		if qty < 0 {
			qty = 0
		}
		warehouse := rec.Str("warehouse_id")
		customer := rec.Str("customer_code")
		barcode := rec.Str("product_barcode")

		var volume *decimal.Decimal
		if unit, ok := lookupVolume(volumes, customer, barcode); ok {
			v := unit.Mul(decimal.NewFromInt(qty)).Round(6)
			volume = &v
		}

		key := rec.Str("log_id")
		if key == "" {
			key = surrogateKey(warehouse, customer, barcode, direction, *occurred, qty)
		}
		events = append(events, entity.InventoryEvent{
			Direction:      direction,
			OccurredAt:     *occurred,
			WarehouseID:    warehouse,
			CustomerCode:   customer,
			ProductBarcode: barcode,
			Quantity:       qty,
			VolumeCBM:      volume,
			Source:         entity.SourceWmsInvLog,
			NaturalKey:     key,
			SyncRunID:      runID,
			SyncedAt:       now,
		})
	}
	return events
}

// firstPositive devuelve el primer valor mayor que cero, o 0 si no hay ninguno.
func firstPositive(vals ...int64) int64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// surrogateKey deriva una clave natural estable para registros sin identificador
// propio. El digest cabe siempre en la columna natural_key.
func surrogateKey(warehouse, customer, barcode, direction string, occurred time.Time, qty int64) string {
	composite := fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		warehouse, customer, barcode, direction, occurred.Format(wms.TimeLayout), qty)
	sum := sha256.Sum256([]byte(composite))
	return hex.EncodeToString(sum[:])
}

// ──────────────────────────────────────────────
// Índice de volúmenes del catálogo
// ──────────────────────────────────────────────

type volumeKey struct {
	customer string
	barcode  string
}

// buildVolumeIndex arma el índice de volúmenes unitarios a partir del catálogo.
// La entrada con clave exacta (cliente, barcode) manda; además se guarda una
// entrada solo por barcode como respaldo para movimientos cuyo cliente no
// coincide con el del catálogo. Como el catálogo llega ordenado, el respaldo
// es determinista: gana el primer cliente en orden alfabético.
func buildVolumeIndex(volumes []repository.ProductVolume) map[volumeKey]decimal.Decimal {
	idx := make(map[volumeKey]decimal.Decimal, len(volumes)*2)
	for _, pv := range volumes {
		idx[volumeKey{customer: pv.CustomerCode, barcode: pv.Barcode}] = pv.VolumeCBM
		fallback := volumeKey{barcode: pv.Barcode}
		if _, ok := idx[fallback]; !ok {
			idx[fallback] = pv.VolumeCBM
		}
	}
	return idx
}

// lookupVolume busca el volumen unitario de un SKU, primero por (cliente, barcode)
// y después solo por barcode.
func lookupVolume(idx map[volumeKey]decimal.Decimal, customer, barcode string) (decimal.Decimal, bool) {
	if barcode == "" {
		return decimal.Decimal{}, false
	}
	if v, ok := idx[volumeKey{customer: customer, barcode: barcode}]; ok {
		return v, true
	}
	v, ok := idx[volumeKey{barcode: barcode}]
	return v, ok
}
