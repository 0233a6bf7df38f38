package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/application/usecase"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ParteHandler maneja el CRUD de catálogo de partes y su historial de
// movimientos.
type ParteHandler struct {
	uc       *usecase.ParteUseCase
	reportes *usecase.ReportesUseCase
}

// NewParteHandler construye el handler.
func NewParteHandler(uc *usecase.ParteUseCase, reportes *usecase.ReportesUseCase) *ParteHandler {
	return &ParteHandler{uc: uc, reportes: reportes}
}

// Create godoc
// @Summary      Crear parte
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearParteRequest  true  "nombre, numero_parte"
// @Success      201   {object}  dto.ParteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partes [post]
func (h *ParteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener parte por ID
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la parte"
// @Success      200  {object}  dto.ParteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [get]
func (h *ParteHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar parte (catálogo; nunca la cantidad)
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la parte"
// @Param        body  body  dto.ActualizarParteRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ParteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [put]
func (h *ParteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar partes
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        busqueda    query  string  false  "match parcial sobre nombre, numero_parte y descripcion"
// @Param        categoria   query  string  false  "filtrar por categoría exacta"
// @Param        bajo_stock  query  bool    false  "solo partes en o bajo su umbral mínimo"
// @Param        limit       query  int     false  "tamaño de página (default 20, max 100)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ParteListResponse
// @Router       /api/partes [get]
func (h *ParteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	filtro := repository.ListadoPartesFiltro{
		Busqueda:      c.Query("busqueda"),
		Categoria:     c.Query("categoria"),
		SoloBajoStock: c.QueryBool("bajo_stock"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	}
	resp, err := h.uc.List(c.Context(), filtro)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar parte
// @Description  Falla con 409 si la parte tiene movimientos registrados.
// @Tags         partes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la parte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [delete]
func (h *ParteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovimientos godoc
// @Summary      Historial de movimientos de una parte
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la parte"
// @Param        desde   query  string  false  "fecha inicial (RFC 3339)"
// @Param        hasta   query  string  false  "fecha final (RFC 3339)"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partes/{id}/movimientos [get]
func (h *ParteHandler) ListMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	desde, ok := parseFecha(c.Query("desde"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde debe ser una fecha RFC 3339"})
	}
	hasta, ok := parseFecha(c.Query("hasta"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta debe ser una fecha RFC 3339"})
	}

	resp, err := h.reportes.MovimientosPorParte(c.Context(), c.Params("id"), desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// parseFecha interpreta un query param de fecha opcional (RFC 3339 o
// YYYY-MM-DD). Vacío retorna nil sin error.
func parseFecha(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}
