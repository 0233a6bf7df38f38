package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/usecase"
)

// ReportesHandler maneja las consultas de reportes (solo lectura).
type ReportesHandler struct {
	uc *usecase.ReportesUseCase
}

// NewReportesHandler construye el handler.
func NewReportesHandler(uc *usecase.ReportesUseCase) *ReportesHandler {
	return &ReportesHandler{uc: uc}
}

// Dashboard godoc
// @Summary      KPIs del dashboard
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/reportes/dashboard [get]
func (h *ReportesHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// BajoStock godoc
// @Summary      Partes en o bajo su umbral mínimo
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ParteResponse
// @Router       /api/reportes/bajo-stock [get]
func (h *ReportesHandler) BajoStock(c *fiber.Ctx) error {
	items, err := h.uc.BajoStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// ValorInventario godoc
// @Summary      Valor del inventario con desglose por categoría
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValorInventarioResponse
// @Router       /api/reportes/valor-inventario [get]
func (h *ReportesHandler) ValorInventario(c *fiber.Ctx) error {
	resp, err := h.uc.ValorInventario(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
