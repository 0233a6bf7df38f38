package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ConfiguracionRepository implementación PostgreSQL de configuraciones.
type ConfiguracionRepository struct {
	db Querier
}

var _ repository.ConfiguracionRepository = (*ConfiguracionRepository)(nil)

// NewConfiguracionRepository construye el repositorio.
func NewConfiguracionRepository(db Querier) *ConfiguracionRepository {
	return &ConfiguracionRepository{db: db}
}

// Get retorna la configuración o nil si la clave no existe.
func (r *ConfiguracionRepository) Get(ctx context.Context, clave string) (*entity.Configuracion, error) {
	query := `
		SELECT clave, valor, descripcion, fecha_creacion, fecha_actualizacion
		FROM configuraciones WHERE clave = $1`

	var c entity.Configuracion
	err := r.db.QueryRow(ctx, query, clave).Scan(
		&c.Clave, &c.Valor, &c.Descripcion, &c.FechaCreacion, &c.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando configuración: %w", err)
	}
	return &c, nil
}

// Upsert inserta o actualiza la configuración por clave.
func (r *ConfiguracionRepository) Upsert(ctx context.Context, config *entity.Configuracion) error {
	query := `
		INSERT INTO configuraciones (clave, valor, descripcion, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (clave) DO UPDATE
		SET valor = EXCLUDED.valor,
		    descripcion = EXCLUDED.descripcion,
		    fecha_actualizacion = EXCLUDED.fecha_actualizacion`

	config.FechaActualizacion = time.Now()
	if config.FechaCreacion.IsZero() {
		config.FechaCreacion = config.FechaActualizacion
	}

	_, err := r.db.Exec(ctx, query,
		config.Clave, config.Valor, config.Descripcion, config.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("guardando configuración: %w", err)
	}
	return nil
}
