package repository

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// RegistroActividadRepository es el puerto del log de actividad (append-only).
type RegistroActividadRepository interface {
	Create(ctx context.Context, registro *entity.RegistroActividad) error
	List(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.RegistroActividad, error)
}
