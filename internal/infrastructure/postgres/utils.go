package postgres

import (
	"fmt"

	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

// filterConditions traduce el filtro analítico a condiciones WHERE posicionales.
// Devuelve las condiciones, los argumentos y el siguiente índice posicional libre.
func filterConditions(filter repository.AnalyticsFilter, pos int) ([]string, []any, int) {
	var conds []string
	var args []any

	if filter.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("occurred_at >= $%d", pos))
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		conds = append(conds, fmt.Sprintf("occurred_at <= $%d", pos))
		args = append(args, *filter.DateTo)
		pos++
	}
	if filter.WarehouseID != "" {
		conds = append(conds, fmt.Sprintf("warehouse_id = $%d", pos))
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.CustomerCode != "" {
		conds = append(conds, fmt.Sprintf("customer_code = $%d", pos))
		args = append(args, filter.CustomerCode)
		pos++
	}

	return conds, args, pos
}

// whereClause une condiciones con AND, precedidas de WHERE. Vacío si no hay condiciones.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	clause := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		clause += " AND " + c
	}
	return clause
}
