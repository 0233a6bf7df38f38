package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParteRepuesto representa una parte o repuesto del catálogo.
// Cantidad solo la muta el motor de movimientos (nunca el CRUD de catálogo);
// PrecioVentaSugerido es derivado de PrecioCompra y PorcentajeGanancia.
type ParteRepuesto struct {
	ID                  string
	Nombre              string
	Descripcion         string
	NumeroParte         string // único
	Cantidad            int64  // nunca negativa
	CantidadMinima      int64  // 0 = sin umbral de reorden
	Ubicacion           string
	PrecioCompra        *decimal.Decimal
	PorcentajeGanancia  *decimal.Decimal
	PrecioVentaSugerido *decimal.Decimal
	UnidadMedida        string
	Categoria           string
	ProveedorID         *string
	Activo              bool
	ImagenURL           string
	ManualURL           string
	FechaCreacion       time.Time
	FechaActualizacion  time.Time
}

// BajoStock indica si la parte está en o por debajo de su umbral mínimo.
// Partes con CantidadMinima 0 no se consideran (umbral no configurado).
func (p *ParteRepuesto) BajoStock() bool {
	return p.CantidadMinima > 0 && p.Cantidad <= p.CantidadMinima
}
