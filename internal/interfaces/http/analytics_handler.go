package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turnover-api/internal/application/analytics"
	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
)

// AnalyticsHandler maneja los endpoints de lectura de /api/analytics.
type AnalyticsHandler struct {
	dashboard *analytics.DashboardUseCase
	analytics *analytics.AnalyticsUseCase
	fees      *analytics.FeeReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	dashboard *analytics.DashboardUseCase,
	analyticsUC *analytics.AnalyticsUseCase,
	fees *analytics.FeeReportUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, analytics: analyticsUC, fees: fees}
}

// GetDashboard godoc
// @Summary      Resumen del panel: totales por dirección y conteos de actividad
// @Tags         analytics
// @Produce      json
// @Param        date_from      query  string  false  "Inicio del período (YYYY-MM-DD). Vacío = sin límite."
// @Param        date_to        query  string  false  "Fin del período (YYYY-MM-DD). Vacío = sin límite."
// @Param        warehouse_id   query  string  false  "Filtrar por bodega"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.dashboard.GetSummary(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetVolume godoc
// @Summary      Serie temporal de volumen por dirección
// @Description  Eventos, unidades, m³ y SKUs distintos por período, separados en
// @Description  entradas y salidas. La granularidad week usa semanas ISO.
// @Tags         analytics
// @Produce      json
// @Param        date_from      query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to        query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        warehouse_id   query  string  false  "Filtrar por bodega (las fechas se truncan en su zona horaria)"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Param        granularity    query  string  false  "day, week o month (default day)"
// @Success      200  {object}  dto.VolumeSeriesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/volume [get]
func (h *AnalyticsHandler) GetVolume(c *fiber.Ctx) error {
	var req dto.VolumeSeriesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.analytics.GetVolumeSeries(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetTurnover godoc
// @Summary      Rotación de inventario del período
// @Description  Calcula inventario inicial, final y promedio sobre el flujo de
// @Description  eventos y la tasa de rotación salidas/promedio. basis=volume usa
// @Description  m³ en lugar de unidades.
// @Tags         analytics
// @Produce      json
// @Param        date_from      query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to        query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        warehouse_id   query  string  false  "Filtrar por bodega"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Param        basis          query  string  false  "quantity o volume (default quantity)"
// @Success      200  {object}  dto.TurnoverDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/turnover [get]
func (h *AnalyticsHandler) GetTurnover(c *fiber.Ctx) error {
	var req dto.TurnoverRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.analytics.GetTurnover(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetCustomers godoc
// @Summary      Actividad agregada por cliente
// @Tags         analytics
// @Produce      json
// @Param        date_from     query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        sort_by       query  string  false  "inbound_qty, outbound_qty, inbound_volume u outbound_volume (default outbound_qty)"
// @Param        sort_order    query  string  false  "asc o desc (default desc)"
// @Success      200  {array}   dto.CustomerRollupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/customers [get]
func (h *AnalyticsHandler) GetCustomers(c *fiber.Ctx) error {
	var req dto.CustomerRollupRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.analytics.GetCustomerBreakdown(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetSKUs godoc
// @Summary      Ranking de SKUs por actividad
// @Tags         analytics
// @Produce      json
// @Param        date_from      query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to        query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        warehouse_id   query  string  false  "Filtrar por bodega"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Param        sort_by        query  string  false  "inbound_qty, outbound_qty, inbound_volume, outbound_volume o total_events"
// @Param        sort_order     query  string  false  "asc o desc (default desc)"
// @Param        limit          query  int     false  "Máx. SKUs (default 20, max 200)"
// @Success      200  {array}   dto.SKURollupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/skus [get]
func (h *AnalyticsHandler) GetSKUs(c *fiber.Ctx) error {
	var req dto.SKURollupRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.analytics.GetSKURollup(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetWarehouses godoc
// @Summary      Comparativo de actividad entre bodegas
// @Tags         analytics
// @Produce      json
// @Param        date_from      query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to        query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Param        sort_by        query  string  false  "inbound_qty, outbound_qty, inbound_volume u outbound_volume"
// @Param        sort_order     query  string  false  "asc o desc (default desc)"
// @Success      200  {array}   dto.WarehouseRollupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/warehouses [get]
func (h *AnalyticsHandler) GetWarehouses(c *fiber.Ctx) error {
	var req dto.WarehouseRollupRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.analytics.GetWarehouseComparison(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetFees godoc
// @Summary      Resumen de cargos por cliente
// @Description  Agrega los cargos de los Excel importados por cliente sobre la
// @Description  fecha de despacho, con el gran total en USD.
// @Tags         analytics
// @Produce      json
// @Param        date_from  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  dto.FeeSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/fees [get]
func (h *AnalyticsHandler) GetFees(c *fiber.Ctx) error {
	var req dto.FeeSummaryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	res, err := h.fees.GetSummary(c.Context(), req)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// respondUseCaseError mapea errores de casos de uso a la respuesta HTTP.
func respondUseCaseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
