package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

// dateLayout formato de fecha aceptado en los parámetros de consulta.
const dateLayout = "2006-01-02"

// buildFilter convierte los parámetros comunes en el filtro del repositorio.
// Fechas vacías dejan ese extremo sin límite; date_to cubre el día completo.
// Las fechas se interpretan en UTC, igual que se almacenan los eventos.
func buildFilter(dateFrom, dateTo, warehouseID, customerCode string) (repository.AnalyticsFilter, error) {
	filter := repository.AnalyticsFilter{
		WarehouseID:  warehouseID,
		CustomerCode: customerCode,
	}

	if dateFrom != "" {
		from, err := time.ParseInLocation(dateLayout, dateFrom, time.UTC)
		if err != nil {
			return filter, fmt.Errorf("date_from inválido %q, se espera YYYY-MM-DD: %w", dateFrom, domain.ErrInvalidInput)
		}
		filter.DateFrom = &from
	}
	if dateTo != "" {
		to, err := time.ParseInLocation(dateLayout, dateTo, time.UTC)
		if err != nil {
			return filter, fmt.Errorf("date_to inválido %q, se espera YYYY-MM-DD: %w", dateTo, domain.ErrInvalidInput)
		}
		to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return filter, fmt.Errorf("date_from no puede ser posterior a date_to: %w", domain.ErrInvalidInput)
	}
	return filter, nil
}

// periodOf etiqueta el rango efectivamente aplicado para la respuesta.
func periodOf(filter repository.AnalyticsFilter) dto.PeriodDTO {
	var p dto.PeriodDTO
	if filter.DateFrom != nil {
		p.DateFrom = filter.DateFrom.Format(dateLayout)
	}
	if filter.DateTo != nil {
		p.DateTo = filter.DateTo.Format(dateLayout)
	}
	return p
}

// rollupSorts campos ordenables de los rollups por cliente y por bodega.
var rollupSorts = map[string]bool{
	"inbound_qty":     true,
	"outbound_qty":    true,
	"inbound_volume":  true,
	"outbound_volume": true,
}

// skuSorts el rollup por SKU acepta además total_events.
var skuSorts = map[string]bool{
	"inbound_qty":     true,
	"outbound_qty":    true,
	"inbound_volume":  true,
	"outbound_volume": true,
	"total_events":    true,
}

// normalizeSort valida sort_by contra la whitelist del endpoint y normaliza
// sort_order. Vacíos aplican el default: salidas en unidades, descendente.
func normalizeSort(sortBy, sortOrder string, allowed map[string]bool) (string, string, error) {
	if sortBy == "" {
		sortBy = "outbound_qty"
	}
	if !allowed[sortBy] {
		return "", "", fmt.Errorf("sort_by inválido %q: %w", sortBy, domain.ErrInvalidInput)
	}
	switch strings.ToLower(sortOrder) {
	case "", "desc":
		sortOrder = "desc"
	case "asc":
		sortOrder = "asc"
	default:
		return "", "", fmt.Errorf("sort_order inválido %q, use asc o desc: %w", sortOrder, domain.ErrInvalidInput)
	}
	return sortBy, sortOrder, nil
}
