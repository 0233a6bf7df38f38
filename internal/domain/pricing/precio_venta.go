package pricing

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// CalcularPrecioVenta deriva el precio de venta sugerido (servicio de dominio).
// PrecioVenta = PrecioCompra * (1 + PorcentajeGanancia/100), redondeado a 2
// decimales. Devuelve nil si falta alguno de los dos insumos.
//
// Es función pura e idempotente: se invoca igual al crear una parte, al
// actualizarla y en la entrada de stock del motor de movimientos (recalcular,
// no estampar una sola vez).
func CalcularPrecioVenta(precioCompra, porcentajeGanancia *decimal.Decimal) *decimal.Decimal {
	if precioCompra == nil || porcentajeGanancia == nil {
		return nil
	}
	precio := precioCompra.Mul(cien.Add(*porcentajeGanancia)).Div(cien).Round(2)
	return &precio
}
