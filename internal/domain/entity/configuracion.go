package entity

import "time"

// ClavePorcentajeGanancia es la configuración del porcentaje de ganancia por
// defecto, sugerido al capturar partes nuevas.
const ClavePorcentajeGanancia = "porcentaje_ganancia"

// Configuracion es un par clave/valor de configuración del sistema.
type Configuracion struct {
	Clave              string
	Valor              string
	Descripcion        string
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
