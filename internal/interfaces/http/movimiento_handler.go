package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/application/inventory"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// MovimientoHandler maneja el registro de movimientos de inventario.
type MovimientoHandler struct {
	uc *inventory.RegistrarMovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.RegistrarMovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (entrada, salida, ajuste o transferencia)
//               sobre una parte y lo anota en el libro, como unidad atómica.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMovimientoRequest  true  "parte_repuesto_id, tipo_movimiento, cantidad_movimiento"
// @Success      201   {object}  dto.RegistrarMovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CrearMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	cantidad, ok := parseCantidad(in.CantidadMovimiento)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CANTIDAD_INVALIDA", Message: "cantidad_movimiento debe ser un número entero"})
	}

	input := inventory.MovimientoInputDTO{
		ParteRepuestoID:      in.ParteRepuestoID,
		TipoMovimiento:       in.TipoMovimiento,
		Cantidad:             cantidad,
		Descripcion:          in.DescripcionMovimiento,
		UbicacionDestino:     in.UbicacionDestino,
		ProveedorID:          in.ProveedorID,
		PrecioCompraUnitario: in.PrecioCompraUnitario,
		PorcentajeGanancia:   in.PorcentajeGanancia,
		UsuarioID:            GetUserID(c),
		IPOrigen:             c.IP(),
	}

	resultado, err := h.uc.RegistrarMovimiento(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarMovimientoResponse{
		Mensaje:    "movimiento registrado",
		Movimiento: movimientoToDTO(resultado.Movimiento),
		Parte:      parteToDTO(resultado.Parte),
	})
}

// parseCantidad acepta el valor crudo del JSON (número o string numérico) y lo
// convierte a decimal. Valores no numéricos retornan ok=false; la verificación
// de que sea entero la hace el caso de uso.
func parseCantidad(raw []byte) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(raw), `"`)))
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func movimientoToDTO(m *entity.MovimientoInventario) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                         m.ID,
		ParteRepuestoID:            m.ParteRepuestoID,
		UsuarioID:                  m.UsuarioID,
		TipoMovimiento:             m.TipoMovimiento,
		CantidadMovimiento:         m.CantidadMovimiento,
		PrecioCompraUnitario:       m.PrecioCompraUnitario,
		PorcentajeGananciaAplicado: m.PorcentajeGananciaAplicado,
		ProveedorID:                m.ProveedorID,
		UbicacionOrigen:            m.UbicacionOrigen,
		UbicacionDestino:           m.UbicacionDestino,
		DescripcionMovimiento:      m.DescripcionMovimiento,
		FechaMovimiento:            m.FechaMovimiento,
	}
}

func parteToDTO(p *entity.ParteRepuesto) dto.ParteResponse {
	return dto.ParteResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		NumeroParte:         p.NumeroParte,
		Cantidad:            p.Cantidad,
		CantidadMinima:      p.CantidadMinima,
		Ubicacion:           p.Ubicacion,
		PrecioCompra:        p.PrecioCompra,
		PorcentajeGanancia:  p.PorcentajeGanancia,
		PrecioVentaSugerido: p.PrecioVentaSugerido,
		UnidadMedida:        p.UnidadMedida,
		Categoria:           p.Categoria,
		ProveedorID:         p.ProveedorID,
		Activo:              p.Activo,
		ImagenURL:           p.ImagenURL,
		ManualURL:           p.ManualURL,
		BajoStock:           p.BajoStock(),
		FechaCreacion:       p.FechaCreacion,
		FechaActualizacion:  p.FechaActualizacion,
	}
}
