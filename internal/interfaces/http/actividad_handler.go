package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ActividadHandler expone el log de actividad (solo lectura, solo
// administrador).
type ActividadHandler struct {
	repo repository.RegistroActividadRepository
}

// NewActividadHandler construye el handler.
func NewActividadHandler(repo repository.RegistroActividadRepository) *ActividadHandler {
	return &ActividadHandler{repo: repo}
}

// List godoc
// @Summary      Listar registros de actividad
// @Tags         actividad
// @Security     Bearer
// @Produce      json
// @Param        usuario_id  query  string  false  "filtrar por usuario"
// @Param        limit       query  int     false  "tamaño de página"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.RegistroActividadResponse
// @Router       /api/actividad [get]
func (h *ActividadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	registros, err := h.repo.List(c.Context(), c.Query("usuario_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.RegistroActividadResponse, 0, len(registros))
	for _, r := range registros {
		items = append(items, dto.RegistroActividadResponse{
			ID:             r.ID,
			UsuarioID:      r.UsuarioID,
			FechaAccion:    r.FechaAccion,
			TipoAccion:     r.TipoAccion,
			ObjetoTipo:     r.ObjetoTipo,
			ObjetoID:       r.ObjetoID,
			CambiosDetalle: r.CambiosDetalle,
			Resultado:      r.Resultado,
			IPOrigen:       r.IPOrigen,
		})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
