package entity

import (
	"encoding/json"
	"time"
)

// Resultados de una acción registrada.
const (
	ResultadoExito = "EXITO"
	ResultadoFallo = "FALLO"
)

// RegistroActividad es una fila de auditoría append-only. Se escribe
// fire-and-forget: un fallo al registrar nunca revierte la operación auditada.
type RegistroActividad struct {
	ID             string
	UsuarioID      *string // nil para acciones no autenticadas
	FechaAccion    time.Time
	TipoAccion     string // ej. "crear_movimiento_entrada", "eliminar_parte"
	ObjetoTipo     string // ej. "MovimientoInventario", "ParteRepuesto"
	ObjetoID       *string
	CambiosDetalle json.RawMessage // JSONB con el detalle del cambio o error
	Resultado      string          // EXITO | FALLO
	IPOrigen       string
}
