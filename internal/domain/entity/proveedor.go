package entity

import "time"

// Proveedor representa un proveedor de partes/repuestos.
// Nombre es único; no puede eliminarse mientras alguna parte lo referencie.
type Proveedor struct {
	ID                 string
	Nombre             string
	ContactoPrincipal  string
	Telefono           string
	CorreoElectronico  string
	Direccion          string
	Notas              string
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
