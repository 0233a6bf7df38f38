package dto

import (
	"encoding/json"
	"time"
)

// RegistroActividadResponse representación HTTP de una fila de auditoría.
type RegistroActividadResponse struct {
	ID             string          `json:"id"`
	UsuarioID      *string         `json:"usuario_id,omitempty"`
	FechaAccion    time.Time       `json:"fecha_accion"`
	TipoAccion     string          `json:"tipo_accion"`
	ObjetoTipo     string          `json:"objeto_tipo"`
	ObjetoID       *string         `json:"objeto_id,omitempty"`
	CambiosDetalle json.RawMessage `json:"cambios_detalle,omitempty"`
	Resultado      string          `json:"resultado"`
	IPOrigen       string          `json:"ip_origen,omitempty"`
}
