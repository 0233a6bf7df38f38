package repository

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// ProveedorRepository es el puerto de persistencia de proveedores.
type ProveedorRepository interface {
	Create(ctx context.Context, proveedor *entity.Proveedor) error
	GetByID(ctx context.Context, id string) (*entity.Proveedor, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Proveedor, error)
	Update(ctx context.Context, proveedor *entity.Proveedor) error
	List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Proveedor, int64, error)
	// Delete falla con domain.ErrProveedorReferenciado si alguna parte lo referencia.
	Delete(ctx context.Context, id string) error
}
