package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearParteRequest body para POST /api/partes.
// La cantidad inicial siempre es 0; el stock entra después vía movimientos.
type CrearParteRequest struct {
	Nombre             string           `json:"nombre"`
	Descripcion        string           `json:"descripcion,omitempty"`
	NumeroParte        string           `json:"numero_parte"`
	CantidadMinima     int64            `json:"cantidad_minima,omitempty"`
	Ubicacion          string           `json:"ubicacion,omitempty"`
	PrecioCompra       *decimal.Decimal `json:"precio_compra,omitempty"`
	PorcentajeGanancia *decimal.Decimal `json:"porcentaje_ganancia,omitempty"`
	UnidadMedida       string           `json:"unidad_medida,omitempty"`
	Categoria          string           `json:"categoria,omitempty"`
	ProveedorID        *string          `json:"proveedor_id,omitempty"`
}

// ActualizarParteRequest body para PUT /api/partes/:id. Campos nil no cambian.
// No incluye cantidad: el stock solo lo muta el motor de movimientos.
type ActualizarParteRequest struct {
	Nombre             *string          `json:"nombre,omitempty"`
	Descripcion        *string          `json:"descripcion,omitempty"`
	NumeroParte        *string          `json:"numero_parte,omitempty"`
	CantidadMinima     *int64           `json:"cantidad_minima,omitempty"`
	Ubicacion          *string          `json:"ubicacion,omitempty"`
	PrecioCompra       *decimal.Decimal `json:"precio_compra,omitempty"`
	PorcentajeGanancia *decimal.Decimal `json:"porcentaje_ganancia,omitempty"`
	UnidadMedida       *string          `json:"unidad_medida,omitempty"`
	Categoria          *string          `json:"categoria,omitempty"`
	ProveedorID        *string          `json:"proveedor_id,omitempty"`
	Activo             *bool            `json:"activo,omitempty"`
	ImagenURL          *string          `json:"imagen_url,omitempty"`
	ManualURL          *string          `json:"manual_url,omitempty"`
}

// ParteResponse representación HTTP de una parte/repuesto.
type ParteResponse struct {
	ID                  string           `json:"id"`
	Nombre              string           `json:"nombre"`
	Descripcion         string           `json:"descripcion,omitempty"`
	NumeroParte         string           `json:"numero_parte"`
	Cantidad            int64            `json:"cantidad"`
	CantidadMinima      int64            `json:"cantidad_minima"`
	Ubicacion           string           `json:"ubicacion,omitempty"`
	PrecioCompra        *decimal.Decimal `json:"precio_compra,omitempty"`
	PorcentajeGanancia  *decimal.Decimal `json:"porcentaje_ganancia,omitempty"`
	PrecioVentaSugerido *decimal.Decimal `json:"precio_venta_sugerido,omitempty"`
	UnidadMedida        string           `json:"unidad_medida,omitempty"`
	Categoria           string           `json:"categoria,omitempty"`
	ProveedorID         *string          `json:"proveedor_id,omitempty"`
	Activo              bool             `json:"activo"`
	ImagenURL           string           `json:"imagen_url,omitempty"`
	ManualURL           string           `json:"manual_url,omitempty"`
	BajoStock           bool             `json:"bajo_stock"`
	FechaCreacion       time.Time        `json:"fecha_creacion"`
	FechaActualizacion  time.Time        `json:"fecha_actualizacion"`
}

// ParteListResponse listado paginado de partes.
type ParteListResponse struct {
	Items []ParteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
