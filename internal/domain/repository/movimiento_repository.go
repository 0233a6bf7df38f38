package repository

import (
	"context"
	"time"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// MovimientoInventarioRepository es el puerto del libro de movimientos.
// El libro es append-only: no existen Update ni Delete.
type MovimientoInventarioRepository interface {
	Insert(ctx context.Context, mov *entity.MovimientoInventario) error
	GetByID(ctx context.Context, id string) (*entity.MovimientoInventario, error)
	ListByParte(ctx context.Context, parteID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error)
	CountByParte(ctx context.Context, parteID string) (int64, error)
}
