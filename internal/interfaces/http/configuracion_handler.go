package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/application/usecase"
)

// ConfiguracionHandler maneja la configuración del sistema (solo
// administrador).
type ConfiguracionHandler struct {
	uc *usecase.ConfiguracionUseCase
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(uc *usecase.ConfiguracionUseCase) *ConfiguracionHandler {
	return &ConfiguracionHandler{uc: uc}
}

// GetGanancia godoc
// @Summary      Obtener el porcentaje de ganancia por defecto
// @Tags         configuraciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConfiguracionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configuraciones/porcentaje_ganancia [get]
func (h *ConfiguracionHandler) GetGanancia(c *fiber.Ctx) error {
	resp, err := h.uc.GetPorcentajeGanancia(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SetGanancia godoc
// @Summary      Establecer el porcentaje de ganancia por defecto
// @Tags         configuraciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarGananciaRequest  true  "valor (número no negativo)"
// @Success      200   {object}  dto.ActualizarGananciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/configuraciones/porcentaje_ganancia [put]
func (h *ConfiguracionHandler) SetGanancia(c *fiber.Ctx) error {
	var in dto.ActualizarGananciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SetPorcentajeGanancia(c.Context(), in, GetUserID(c), c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActualizarGananciaResponse{
		Mensaje:       "configuración 'porcentaje_ganancia' establecida a " + resp.Valor + "%",
		Configuracion: *resp,
	})
}
