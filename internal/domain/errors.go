package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada sentinel se mapea en
// la capa HTTP a un código legible por máquina y un status HTTP.
var (
	ErrNoEncontrado           = errors.New("recurso no encontrado")
	ErrParteNoEncontrada      = errors.New("parte/repuesto no encontrada")
	ErrProveedorNoEncontrado  = errors.New("proveedor no encontrado")
	ErrUsuarioNoEncontrado    = errors.New("usuario no encontrado")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento no válido")
	ErrCantidadInvalida       = errors.New("cantidad inválida: debe ser un entero")
	ErrStockInsuficiente      = errors.New("stock insuficiente")
	ErrStockNegativo          = errors.New("el ajuste no puede resultar en stock negativo")
	ErrDestinoRequerido       = errors.New("la ubicación de destino es obligatoria para una transferencia")
	ErrConflictoConcurrencia  = errors.New("conflicto de concurrencia: reintentar el movimiento")
	ErrTieneMovimientos       = errors.New("la parte tiene movimientos de inventario asociados")
	ErrProveedorReferenciado  = errors.New("el proveedor está referenciado por partes/repuestos")
	ErrDuplicado              = errors.New("recurso duplicado")
	ErrEntradaInvalida        = errors.New("entrada inválida")
	ErrNoAutorizado           = errors.New("no autorizado")
	ErrAccesoDenegado         = errors.New("acceso denegado")
)
