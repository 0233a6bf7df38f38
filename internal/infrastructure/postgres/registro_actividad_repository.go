package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// RegistroActividadRepository implementación PostgreSQL del log de actividad.
type RegistroActividadRepository struct {
	db Querier
}

var _ repository.RegistroActividadRepository = (*RegistroActividadRepository)(nil)

// NewRegistroActividadRepository construye el repositorio.
func NewRegistroActividadRepository(db Querier) *RegistroActividadRepository {
	return &RegistroActividadRepository{db: db}
}

// Create inserta el registro de actividad.
func (r *RegistroActividadRepository) Create(ctx context.Context, registro *entity.RegistroActividad) error {
	query := `
		INSERT INTO registros_actividad
			(id, usuario_id, fecha_accion, tipo_accion, objeto_tipo, objeto_id,
			 cambios_detalle, resultado, ip_origen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if registro.FechaAccion.IsZero() {
		registro.FechaAccion = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		registro.ID, registro.UsuarioID, registro.FechaAccion, registro.TipoAccion,
		registro.ObjetoTipo, registro.ObjetoID, registro.CambiosDetalle,
		registro.Resultado, registro.IPOrigen,
	)
	if err != nil {
		return fmt.Errorf("insertando registro de actividad: %w", err)
	}
	return nil
}

// List retorna registros más recientes primero, opcionalmente filtrados por
// usuario.
func (r *RegistroActividadRepository) List(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.RegistroActividad, error) {
	query := `
		SELECT id, usuario_id, fecha_accion, tipo_accion, objeto_tipo, objeto_id,
		       cambios_detalle, resultado, ip_origen
		FROM registros_actividad`
	var args []any

	if usuarioID != "" {
		args = append(args, usuarioID)
		query += " WHERE usuario_id = $1"
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY fecha_accion DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listando registros de actividad: %w", err)
	}
	defer rows.Close()

	var registros []*entity.RegistroActividad
	for rows.Next() {
		var reg entity.RegistroActividad
		if err := rows.Scan(
			&reg.ID, &reg.UsuarioID, &reg.FechaAccion, &reg.TipoAccion,
			&reg.ObjetoTipo, &reg.ObjetoID, &reg.CambiosDetalle,
			&reg.Resultado, &reg.IPOrigen,
		); err != nil {
			return nil, fmt.Errorf("escaneando registro de actividad: %w", err)
		}
		registros = append(registros, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando registros de actividad: %w", err)
	}
	return registros, nil
}
