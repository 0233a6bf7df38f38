package repository

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// ConfiguracionRepository es el puerto de persistencia de configuraciones.
type ConfiguracionRepository interface {
	Get(ctx context.Context, clave string) (*entity.Configuracion, error)
	// Upsert inserta la configuración o actualiza valor y descripción si la
	// clave ya existe.
	Upsert(ctx context.Context, config *entity.Configuracion) error
}
