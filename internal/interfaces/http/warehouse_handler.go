package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turnover-api/internal/application/analytics"
	"github.com/jhoicas/turnover-api/internal/application/dto"
)

// WarehouseHandler maneja capacidades y utilización de bodegas.
type WarehouseHandler struct {
	uc *analytics.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *analytics.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// ListCapacities godoc
// @Summary      Listar capacidades configuradas
// @Description  Incluye todas las bodegas del directorio; las que no tienen
// @Description  capacidad configurada aparecen con 0.
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseCapacityDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouses/capacities [get]
func (h *WarehouseHandler) ListCapacities(c *fiber.Ctx) error {
	res, err := h.uc.ListCapacities(c.Context())
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// SetCapacity godoc
// @Summary      Configurar la capacidad total de una bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCapacityRequest  true  "warehouse_id y total_capacity_cbm (m³)"
// @Success      200   {object}  dto.WarehouseCapacityDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/warehouses/capacities [put]
func (h *WarehouseHandler) SetCapacity(c *fiber.Ctx) error {
	var in dto.SetCapacityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	res, err := h.uc.SetCapacity(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}

// GetUtilization godoc
// @Summary      Ocupación estimada por bodega
// @Description  Volumen neto acumulado (entradas menos salidas, en m³) contra la
// @Description  capacidad configurada, con porcentaje 0-100.
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseUtilizationDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouses/utilization [get]
func (h *WarehouseHandler) GetUtilization(c *fiber.Ctx) error {
	res, err := h.uc.GetUtilization(c.Context())
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(res)
}
