package repository

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// UsuarioRepository es el puerto de persistencia de usuarios.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	List(ctx context.Context, limit, offset int) ([]*entity.Usuario, int64, error)
	Delete(ctx context.Context, id string) error
}
