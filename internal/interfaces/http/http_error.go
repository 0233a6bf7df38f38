package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
)

// mapeo de errores de dominio a status HTTP + código de máquina.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrParteNoEncontrada, fiber.StatusNotFound, "PARTE_NO_ENCONTRADA"},
	{domain.ErrProveedorNoEncontrado, fiber.StatusNotFound, "PROVEEDOR_NO_ENCONTRADO"},
	{domain.ErrUsuarioNoEncontrado, fiber.StatusNotFound, "USUARIO_NO_ENCONTRADO"},
	{domain.ErrNoEncontrado, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrTipoMovimientoInvalido, fiber.StatusBadRequest, "TIPO_MOVIMIENTO_INVALIDO"},
	{domain.ErrCantidadInvalida, fiber.StatusBadRequest, "CANTIDAD_INVALIDA"},
	{domain.ErrDestinoRequerido, fiber.StatusBadRequest, "DESTINO_REQUERIDO"},
	{domain.ErrEntradaInvalida, fiber.StatusBadRequest, "ENTRADA_INVALIDA"},
	{domain.ErrStockInsuficiente, fiber.StatusConflict, "STOCK_INSUFICIENTE"},
	{domain.ErrStockNegativo, fiber.StatusConflict, "STOCK_NEGATIVO"},
	{domain.ErrConflictoConcurrencia, fiber.StatusConflict, "CONFLICTO_CONCURRENCIA"},
	{domain.ErrTieneMovimientos, fiber.StatusConflict, "TIENE_MOVIMIENTOS"},
	{domain.ErrProveedorReferenciado, fiber.StatusConflict, "PROVEEDOR_REFERENCIADO"},
	{domain.ErrDuplicado, fiber.StatusConflict, "DUPLICADO"},
	{domain.ErrNoAutorizado, fiber.StatusUnauthorized, "NO_AUTORIZADO"},
	{domain.ErrAccesoDenegado, fiber.StatusForbidden, "ACCESO_DENEGADO"},
}

// respondError traduce un error de dominio a la respuesta HTTP correspondiente.
// Errores no reconocidos responden 500 sin filtrar detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
