package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	TipoEntrada       = "entrada"
	TipoSalida        = "salida"
	TipoAjuste        = "ajuste"
	TipoTransferencia = "transferencia"
)

// TipoMovimientoValido reporta si el tipo es uno de los cuatro reconocidos.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSalida, TipoAjuste, TipoTransferencia:
		return true
	}
	return false
}

// MovimientoInventario representa un evento inmutable contra exactamente una
// parte. Una vez creado nunca se modifica ni elimina (libro append-only).
// CantidadMovimiento lleva signo solo en ajustes; entrada/salida/transferencia
// la registran positiva y el tipo define la dirección.
type MovimientoInventario struct {
	ID                         string
	ParteRepuestoID            string
	UsuarioID                  string
	TipoMovimiento             string
	CantidadMovimiento         int64
	PrecioCompraUnitario       *decimal.Decimal // solo entrada
	PorcentajeGananciaAplicado *decimal.Decimal // solo entrada
	ProveedorID                *string          // solo entrada
	UbicacionOrigen            *string          // solo transferencia (ubicación previa)
	UbicacionDestino           *string          // solo transferencia
	DescripcionMovimiento      string
	FechaMovimiento            time.Time // asignada por el servidor al crear
}
