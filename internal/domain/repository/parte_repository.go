package repository

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// ParteRepuestoRepository es el puerto de persistencia del catálogo de partes.
//
// Save es exclusivo del motor de movimientos (actualiza cantidad, ubicación y
// precios dentro de la transacción del movimiento). Update es el camino del
// CRUD de catálogo y nunca toca la cantidad.
type ParteRepuestoRepository interface {
	Create(ctx context.Context, parte *entity.ParteRepuesto) error
	GetByID(ctx context.Context, id string) (*entity.ParteRepuesto, error)
	// GetForUpdate carga la parte bloqueando la fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.ParteRepuesto, error)
	GetByNumeroParte(ctx context.Context, numeroParte string) (*entity.ParteRepuesto, error)
	Update(ctx context.Context, parte *entity.ParteRepuesto) error
	Save(ctx context.Context, parte *entity.ParteRepuesto) error
	List(ctx context.Context, filtro ListadoPartesFiltro) ([]*entity.ParteRepuesto, int64, error)
	Delete(ctx context.Context, id string) error
}

// ListadoPartesFiltro parámetros de búsqueda/paginación para el listado.
type ListadoPartesFiltro struct {
	Busqueda      string // match parcial sobre nombre, numero_parte y descripcion
	Categoria     string
	SoloBajoStock bool
	Limit         int
	Offset        int
}
