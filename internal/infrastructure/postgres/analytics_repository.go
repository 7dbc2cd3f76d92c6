package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre inventory_events.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetFlowTotals devuelve totales por dirección y conteos de actividad del período.
// Las cantidades se castean a BIGINT; los volúmenes quedan en NUMERIC (decimal).
func (r *AnalyticsRepo) GetFlowTotals(ctx context.Context, filter repository.AnalyticsFilter) (*repository.FlowTotalsResult, error) {
	query := `
	SELECT
	    COUNT(CASE WHEN direction = 'inbound'  THEN 1 END)                                  AS inbound_events,
	    COUNT(CASE WHEN direction = 'outbound' THEN 1 END)                                  AS outbound_events,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN quantity ELSE 0 END), 0)::BIGINT AS inbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN quantity ELSE 0 END), 0)::BIGINT AS outbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS inbound_volume,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS outbound_volume,
	    COUNT(DISTINCT CASE WHEN direction = 'inbound'  THEN NULLIF(product_barcode, '') END) AS inbound_skus,
	    COUNT(DISTINCT CASE WHEN direction = 'outbound' THEN NULLIF(product_barcode, '') END) AS outbound_skus,
	    COUNT(DISTINCT NULLIF(customer_code, ''))                                           AS active_customers,
	    COUNT(DISTINCT NULLIF(product_barcode, ''))                                         AS active_skus,
	    COUNT(DISTINCT NULLIF(warehouse_id, ''))                                            AS active_warehouses
	FROM inventory_events`
	conds, args, _ := filterConditions(filter, 1)
	query += whereClause(conds)

	var res repository.FlowTotalsResult
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&res.InboundEvents,
		&res.OutboundEvents,
		&res.InboundQty,
		&res.OutboundQty,
		&res.InboundVolume,
		&res.OutboundVolume,
		&res.InboundSKUs,
		&res.OutboundSKUs,
		&res.ActiveCustomers,
		&res.ActiveSKUs,
		&res.ActiveWarehouses,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetFlowTotals: %w", err)
	}
	return &res, nil
}

// CountCatalogSKUs devuelve el total de productos del catálogo sincronizado.
func (r *AnalyticsRepo) CountCatalogSKUs(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM products`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountCatalogSKUs: %w", err)
	}
	return count, nil
}

// bucketLabels formato de etiqueta por granularidad. El orden lexicográfico de las
// etiquetas coincide con el cronológico (IW va con cero a la izquierda).
var bucketLabels = map[string]string{
	"day":   "YYYY-MM-DD",
	"week":  "IYYY-IW",
	"month": "YYYY-MM",
}

// GetVolumeSeries devuelve la serie temporal agrupada por (período, dirección).
// Las fechas se truncan en la zona horaria tz (UTC si está vacía).
func (r *AnalyticsRepo) GetVolumeSeries(ctx context.Context, filter repository.AnalyticsFilter, granularity, tz string) ([]repository.VolumeBucketResult, error) {
	label, ok := bucketLabels[granularity]
	if !ok {
		return nil, fmt.Errorf("analytics.GetVolumeSeries: granularidad inválida %q", granularity)
	}
	if tz == "" {
		tz = "UTC"
	}

	// granularity viene de la whitelist de bucketLabels, se puede interpolar
	query := fmt.Sprintf(`
	SELECT
	    to_char(date_trunc('%s', occurred_at AT TIME ZONE $1), '%s') AS bucket,
	    direction,
	    COUNT(*)                                    AS events,
	    COALESCE(SUM(quantity), 0)::BIGINT          AS total_qty,
	    COALESCE(SUM(COALESCE(volume_cbm, 0)), 0)   AS total_volume,
	    COUNT(DISTINCT NULLIF(product_barcode, '')) AS skus
	FROM inventory_events`, granularity, label)
	args := []any{tz}
	conds, filterArgs, _ := filterConditions(filter, 2)
	args = append(args, filterArgs...)
	query += whereClause(conds)
	query += `
	GROUP BY 1, direction
	ORDER BY 1, direction`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetVolumeSeries: %w", err)
	}
	defer rows.Close()

	var results []repository.VolumeBucketResult
	for rows.Next() {
		var row repository.VolumeBucketResult
		if err := rows.Scan(
			&row.Bucket,
			&row.Direction,
			&row.Events,
			&row.Quantity,
			&row.Volume,
			&row.SKUs,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetVolumeSeries scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTurnoverInputs devuelve inventario inicial, entradas y salidas del período.
// basis "quantity" suma unidades; "volume" suma m³ (NULL cuenta como 0).
// El inicial es el neto acumulado estrictamente antes de DateFrom; sin DateFrom es 0.
func (r *AnalyticsRepo) GetTurnoverInputs(ctx context.Context, basis string, filter repository.AnalyticsFilter) (*repository.TurnoverInputsResult, error) {
	var valueExpr string
	switch basis {
	case "quantity":
		valueExpr = "quantity"
	case "volume":
		valueExpr = "COALESCE(volume_cbm, 0)"
	default:
		return nil, fmt.Errorf("analytics.GetTurnoverInputs: base inválida %q", basis)
	}

	res := &repository.TurnoverInputsResult{Beginning: decimal.Zero}

	if filter.DateFrom != nil {
		query := fmt.Sprintf(`
		SELECT COALESCE(SUM(CASE WHEN direction = 'inbound' THEN %s ELSE -%s END), 0) AS beginning
		FROM inventory_events
		WHERE occurred_at < $1`, valueExpr, valueExpr)
		args := []any{*filter.DateFrom}
		pos := 2
		if filter.WarehouseID != "" {
			query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
			args = append(args, filter.WarehouseID)
			pos++
		}
		if filter.CustomerCode != "" {
			query += fmt.Sprintf(" AND customer_code = $%d", pos)
			args = append(args, filter.CustomerCode)
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.Beginning); err != nil {
			return nil, fmt.Errorf("analytics.GetTurnoverInputs beginning: %w", err)
		}
	}

	query := fmt.Sprintf(`
	SELECT
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN %s ELSE 0 END), 0) AS inbound,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN %s ELSE 0 END), 0) AS outbound
	FROM inventory_events`, valueExpr, valueExpr)
	conds, args, _ := filterConditions(filter, 1)
	query += whereClause(conds)

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.Inbound, &res.Outbound); err != nil {
		return nil, fmt.Errorf("analytics.GetTurnoverInputs: %w", err)
	}
	return res, nil
}

// rollupSortColumns columnas ordenables comunes a los rollups.
var rollupSortColumns = map[string]string{
	"inbound_qty":     "inbound_qty",
	"outbound_qty":    "outbound_qty",
	"inbound_volume":  "inbound_volume",
	"outbound_volume": "outbound_volume",
}

// skuSortColumns columnas ordenables del rollup por SKU.
var skuSortColumns = map[string]string{
	"inbound_qty":     "inbound_qty",
	"outbound_qty":    "outbound_qty",
	"inbound_volume":  "inbound_volume",
	"outbound_volume": "outbound_volume",
	"total_events":    "total_events",
}

// resolveSort valida columna y dirección de orden contra una whitelist.
// Vacíos aplican el default: salidas en unidades, descendente.
func resolveSort(sortBy, sortOrder string, allowed map[string]string) (string, string, error) {
	if sortBy == "" {
		sortBy = "outbound_qty"
	}
	col, ok := allowed[sortBy]
	if !ok {
		return "", "", fmt.Errorf("orden inválido %q", sortBy)
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col, dir, nil
}

// GetCustomerBreakdown agrega actividad por cliente. Los eventos sin cliente
// se agrupan bajo "UNKNOWN".
func (r *AnalyticsRepo) GetCustomerBreakdown(ctx context.Context, filter repository.AnalyticsFilter, sortBy, sortOrder string) ([]repository.CustomerBreakdownResult, error) {
	col, dir, err := resolveSort(sortBy, sortOrder, rollupSortColumns)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCustomerBreakdown: %w", err)
	}

	query := `
	SELECT
	    COALESCE(NULLIF(customer_code, ''), 'UNKNOWN')                                      AS customer,
	    COUNT(CASE WHEN direction = 'inbound'  THEN 1 END)                                  AS inbound_events,
	    COUNT(CASE WHEN direction = 'outbound' THEN 1 END)                                  AS outbound_events,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN quantity ELSE 0 END), 0)::BIGINT AS inbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN quantity ELSE 0 END), 0)::BIGINT AS outbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS inbound_volume,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS outbound_volume,
	    COUNT(DISTINCT CASE WHEN direction = 'inbound'  THEN NULLIF(product_barcode, '') END) AS inbound_skus,
	    COUNT(DISTINCT CASE WHEN direction = 'outbound' THEN NULLIF(product_barcode, '') END) AS outbound_skus
	FROM inventory_events`
	conds, args, _ := filterConditions(filter, 1)
	query += whereClause(conds)
	// col y dir salen de whitelists, se pueden interpolar
	query += fmt.Sprintf(`
	GROUP BY 1
	ORDER BY %s %s, customer ASC`, col, dir)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCustomerBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerBreakdownResult
	for rows.Next() {
		var row repository.CustomerBreakdownResult
		if err := rows.Scan(
			&row.CustomerCode,
			&row.InboundEvents,
			&row.OutboundEvents,
			&row.InboundQty,
			&row.OutboundQty,
			&row.InboundVolume,
			&row.OutboundVolume,
			&row.InboundSKUs,
			&row.OutboundSKUs,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetCustomerBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSKURollup agrega actividad por (barcode, cliente); se excluyen eventos sin barcode.
func (r *AnalyticsRepo) GetSKURollup(ctx context.Context, filter repository.AnalyticsFilter, sortBy, sortOrder string, limit int) ([]repository.SKURollupResult, error) {
	col, dir, err := resolveSort(sortBy, sortOrder, skuSortColumns)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSKURollup: %w", err)
	}

	query := `
	SELECT
	    product_barcode                                                                     AS barcode,
	    COALESCE(NULLIF(customer_code, ''), 'UNKNOWN')                                      AS customer,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN quantity ELSE 0 END), 0)::BIGINT AS inbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN quantity ELSE 0 END), 0)::BIGINT AS outbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS inbound_volume,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS outbound_volume,
	    COUNT(*)                                                                            AS total_events
	FROM inventory_events`
	conds := []string{"product_barcode <> ''"}
	filterConds, args, pos := filterConditions(filter, 1)
	conds = append(conds, filterConds...)
	query += whereClause(conds)
	// col y dir salen de whitelists, se pueden interpolar
	query += fmt.Sprintf(`
	GROUP BY 1, 2
	ORDER BY %s %s, barcode ASC
	LIMIT $%d`, col, dir, pos)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSKURollup: %w", err)
	}
	defer rows.Close()

	var results []repository.SKURollupResult
	for rows.Next() {
		var row repository.SKURollupResult
		if err := rows.Scan(
			&row.Barcode,
			&row.CustomerCode,
			&row.InboundQty,
			&row.OutboundQty,
			&row.InboundVolume,
			&row.OutboundVolume,
			&row.TotalEvents,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetSKURollup scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetWarehouseRollup agrega actividad por bodega. SKUs y clientes distintos se
// cuentan sobre ambas direcciones juntas.
func (r *AnalyticsRepo) GetWarehouseRollup(ctx context.Context, filter repository.AnalyticsFilter, sortBy, sortOrder string) ([]repository.WarehouseRollupResult, error) {
	col, dir, err := resolveSort(sortBy, sortOrder, rollupSortColumns)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetWarehouseRollup: %w", err)
	}

	query := `
	SELECT
	    warehouse_id,
	    COUNT(CASE WHEN direction = 'inbound'  THEN 1 END)                                  AS inbound_events,
	    COUNT(CASE WHEN direction = 'outbound' THEN 1 END)                                  AS outbound_events,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN quantity ELSE 0 END), 0)::BIGINT AS inbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN quantity ELSE 0 END), 0)::BIGINT AS outbound_qty,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'  THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS inbound_volume,
	    COALESCE(SUM(CASE WHEN direction = 'outbound' THEN COALESCE(volume_cbm, 0) ELSE 0 END), 0) AS outbound_volume,
	    COUNT(DISTINCT NULLIF(product_barcode, ''))                                         AS skus,
	    COUNT(DISTINCT NULLIF(customer_code, ''))                                           AS customers
	FROM inventory_events`
	conds, args, _ := filterConditions(filter, 1)
	query += whereClause(conds)
	// col y dir salen de whitelists, se pueden interpolar
	query += fmt.Sprintf(`
	GROUP BY warehouse_id
	ORDER BY %s %s, warehouse_id ASC`, col, dir)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetWarehouseRollup: %w", err)
	}
	defer rows.Close()

	var results []repository.WarehouseRollupResult
	for rows.Next() {
		var row repository.WarehouseRollupResult
		if err := rows.Scan(
			&row.WarehouseID,
			&row.InboundEvents,
			&row.OutboundEvents,
			&row.InboundQty,
			&row.OutboundQty,
			&row.InboundVolume,
			&row.OutboundVolume,
			&row.SKUs,
			&row.Customers,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetWarehouseRollup scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetNetVolumeByWarehouse devuelve el volumen neto histórico por bodega (entradas - salidas).
func (r *AnalyticsRepo) GetNetVolumeByWarehouse(ctx context.Context) ([]repository.WarehouseNetVolumeResult, error) {
	const query = `
	SELECT
	    warehouse_id,
	    COALESCE(SUM(CASE WHEN direction = 'inbound'
	        THEN COALESCE(volume_cbm, 0)
	        ELSE -COALESCE(volume_cbm, 0) END), 0) AS net_volume
	FROM inventory_events
	GROUP BY warehouse_id
	ORDER BY warehouse_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetNetVolumeByWarehouse: %w", err)
	}
	defer rows.Close()

	var results []repository.WarehouseNetVolumeResult
	for rows.Next() {
		var row repository.WarehouseNetVolumeResult
		if err := rows.Scan(&row.WarehouseID, &row.NetVolume); err != nil {
			return nil, fmt.Errorf("analytics.GetNetVolumeByWarehouse scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
