package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActualizarGananciaRequest body para PUT /api/configuraciones/porcentaje_ganancia.
type ActualizarGananciaRequest struct {
	Valor       *decimal.Decimal `json:"valor"`
	Descripcion string           `json:"descripcion,omitempty"`
}

// ConfiguracionResponse representación HTTP de una configuración.
type ConfiguracionResponse struct {
	Clave              string    `json:"clave"`
	Valor              string    `json:"valor"`
	Descripcion        string    `json:"descripcion,omitempty"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// ActualizarGananciaResponse respuesta del PUT con la configuración aplicada.
type ActualizarGananciaResponse struct {
	Mensaje       string                `json:"mensaje"`
	Configuracion ConfiguracionResponse `json:"configuracion"`
}
