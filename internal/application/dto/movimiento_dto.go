package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CrearMovimientoRequest body para POST /api/movimientos.
// CantidadMovimiento se recibe cruda para poder rechazar valores no numéricos
// o no enteros con CANTIDAD_INVALIDA en lugar de truncarlos en silencio.
type CrearMovimientoRequest struct {
	ParteRepuestoID       string           `json:"parte_repuesto_id"`
	TipoMovimiento        string           `json:"tipo_movimiento"`
	CantidadMovimiento    json.RawMessage  `json:"cantidad_movimiento"`
	DescripcionMovimiento string           `json:"descripcion_movimiento,omitempty"`
	UbicacionDestino      string           `json:"ubicacion_destino,omitempty"`
	ProveedorID           *string          `json:"proveedor_id,omitempty"`
	PrecioCompraUnitario  *decimal.Decimal `json:"precio_compra_unitario,omitempty"`
	PorcentajeGanancia    *decimal.Decimal `json:"porcentaje_ganancia,omitempty"`
}

// MovimientoResponse representación HTTP de un movimiento del libro.
type MovimientoResponse struct {
	ID                         string           `json:"id"`
	ParteRepuestoID            string           `json:"parte_repuesto_id"`
	UsuarioID                  string           `json:"usuario_id"`
	TipoMovimiento             string           `json:"tipo_movimiento"`
	CantidadMovimiento         int64            `json:"cantidad_movimiento"`
	PrecioCompraUnitario       *decimal.Decimal `json:"precio_compra_unitario,omitempty"`
	PorcentajeGananciaAplicado *decimal.Decimal `json:"porcentaje_ganancia_aplicado,omitempty"`
	ProveedorID                *string          `json:"proveedor_id,omitempty"`
	UbicacionOrigen            *string          `json:"ubicacion_origen,omitempty"`
	UbicacionDestino           *string          `json:"ubicacion_destino,omitempty"`
	DescripcionMovimiento      string           `json:"descripcion_movimiento,omitempty"`
	FechaMovimiento            time.Time        `json:"fecha_movimiento"`
}

// RegistrarMovimientoResponse respuesta de un movimiento aplicado: el
// movimiento insertado y la parte ya actualizada, como una sola unidad.
type RegistrarMovimientoResponse struct {
	Mensaje    string             `json:"mensaje"`
	Movimiento MovimientoResponse `json:"movimiento"`
	Parte      ParteResponse      `json:"parte"`
}

// MovimientoListResponse listado paginado de movimientos de una parte.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
