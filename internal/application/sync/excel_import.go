package sync

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/internal/infrastructure/excel"
)

// ImportResult resultado de un import de Excel.
// Skipped cuenta filas inválidas del archivo más órdenes repetidas dentro de él.
type ImportResult struct {
	RunID    uuid.UUID
	Template excel.Template
	Imported int64
	Skipped  int
}

// ImportExcel importa un archivo de facturación dentro del ciclo de la petición
// (a diferencia de los syncs del WMS, el resultado se devuelve al cliente).
// El nombre del archivo es la clave del lote: con replaceExisting se borra
// todo lo importado antes bajo ese nombre. Cada orden produce un evento outbound
// y, si trae cargos, un registro de cargos; dentro del archivo gana la primera
// aparición de cada orden.
func (o *Orchestrator) ImportExcel(ctx context.Context, fileName string, file io.Reader, replaceExisting bool) (ImportResult, error) {
	if fileName == "" {
		return ImportResult{}, fmt.Errorf("nombre de archivo requerido: %w", domain.ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return ImportResult{}, fmt.Errorf("solo se aceptan archivos .xlsx: %w", domain.ErrInvalidInput)
	}

	slog, err := o.begin(ctx, entity.SyncTypeExcel)
	if err != nil {
		return ImportResult{}, err
	}
	res, err := o.importExcel(ctx, slog.RunID, fileName, file, replaceExisting)
	o.finish(slog.RunID, slog.SyncType, res.Imported, err)
	if err != nil {
		return ImportResult{}, err
	}
	res.RunID = slog.RunID
	return res, nil
}

func (o *Orchestrator) importExcel(ctx context.Context, runID uuid.UUID, fileName string, file io.Reader, replaceExisting bool) (ImportResult, error) {
	parsed, err := excel.Parse(file)
	if err != nil {
		return ImportResult{}, err
	}

	now := time.Now()
	skipped := parsed.Skipped
	seen := make(map[string]bool, len(parsed.Rows))
	events := make([]entity.InventoryEvent, 0, len(parsed.Rows))
	var fees []entity.OrderFee
	for _, row := range parsed.Rows {
		if seen[row.OrderCode] {
			skipped++
			continue
		}
		seen[row.OrderCode] = true
		events = append(events, eventFromRow(row, fileName, runID, now))
		if fee, ok := feeFromRow(row, fileName, runID, now); ok {
			fees = append(fees, fee)
		}
	}

	var written int64
	err = o.tx.Run(ctx, func(eventRepo repository.EventRepository, _ repository.ProductRepository, feeRepo repository.FeeRepository) error {
		if replaceExisting {
			if _, err := eventRepo.DeleteByBatchKey(ctx, entity.SourceExcel, fileName); err != nil {
				return err
			}
			if _, err := feeRepo.DeleteByBatchKey(ctx, fileName); err != nil {
				return err
			}
		}
		n, err := eventRepo.UpsertEvents(ctx, events)
		if err != nil {
			return err
		}
		written = n
		_, err = feeRepo.UpsertFees(ctx, fees)
		return err
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("guardar import de %s: %w", fileName, err)
	}
	return ImportResult{Template: parsed.Template, Imported: written, Skipped: skipped}, nil
}

// eventFromRow mapea una fila del archivo al evento outbound equivalente.
func eventFromRow(row excel.Row, fileName string, runID uuid.UUID, now time.Time) entity.InventoryEvent {
	qty := row.ParcelQuantity
	if qty < 1 {
		qty = 1
	}
	return entity.InventoryEvent{
		Direction:    entity.DirectionOutbound,
		OccurredAt:   row.ShipTime,
		WarehouseID:  row.WarehouseCode,
		CustomerCode: row.CustomerCode,
		Quantity:     qty,
		VolumeCBM:    row.VolumeCBM(),
		Source:       entity.SourceExcel,
		NaturalKey:   row.OrderCode,
		BatchKey:     fileName,
		SyncRunID:    runID,
		SyncedAt:     now,
	}
}

// feeFromRow arma el registro de cargos de la fila; ok es false si la fila no trae ninguno.
func feeFromRow(row excel.Row, fileName string, runID uuid.UUID, now time.Time) (entity.OrderFee, bool) {
	if row.ShippingFee == nil && row.OperationFee == nil && row.FuelSurcharge == nil &&
		row.MaterialFee == nil && row.OtherFee == nil && row.TotalFee == nil {
		return entity.OrderFee{}, false
	}
	shipTime := row.ShipTime
	return entity.OrderFee{
		OrderCode:     row.OrderCode,
		CustomerCode:  row.CustomerCode,
		ShipTime:      &shipTime,
		ShippingFee:   row.ShippingFee,
		OperationFee:  row.OperationFee,
		FuelSurcharge: row.FuelSurcharge,
		MaterialFee:   row.MaterialFee,
		OtherFee:      row.OtherFee,
		TotalFee:      row.TotalFee,
		BatchKey:      fileName,
		SyncRunID:     runID,
		SyncedAt:      now,
	}, true
}
