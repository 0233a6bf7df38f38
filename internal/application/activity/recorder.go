package activity

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
	"github.com/tallerpro/repuestos-api/pkg/logger"
)

// Registrador escribe registros de actividad. Es fire-and-forget: si la
// escritura falla, se deja constancia en el log estructurado y la operación
// auditada sigue su curso sin enterarse.
type Registrador struct {
	repo repository.RegistroActividadRepository
	log  *logger.Logger
}

// NewRegistrador construye el registrador.
func NewRegistrador(repo repository.RegistroActividadRepository, log *logger.Logger) *Registrador {
	return &Registrador{repo: repo, log: log}
}

// Registrar persiste un registro de actividad sin propagar errores.
func (r *Registrador) Registrar(ctx context.Context, registro entity.RegistroActividad) {
	if err := r.repo.Create(ctx, &registro); err != nil {
		r.log.Warn().
			Err(err).
			Str("tipo_accion", registro.TipoAccion).
			Str("objeto_tipo", registro.ObjetoTipo).
			Msg("no se pudo escribir el registro de actividad")
	}
}
