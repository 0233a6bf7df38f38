package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

const usuarioColumns = `id, nombre_usuario, correo_electronico, contrasena_hash, rol, activo,
	fecha_creacion, fecha_actualizacion`

// UsuarioRepository implementación PostgreSQL de usuarios.
type UsuarioRepository struct {
	db Querier
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

// NewUsuarioRepository construye el repositorio.
func NewUsuarioRepository(db Querier) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// Create inserta el usuario. Nombre de usuario o correo duplicados retornan
// domain.ErrDuplicado.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	usuario.FechaCreacion = now
	usuario.FechaActualizacion = now

	_, err := r.db.Exec(ctx, query,
		usuario.ID, usuario.NombreUsuario, usuario.CorreoElectronico, usuario.ContrasenaHash,
		usuario.Rol, usuario.Activo, usuario.FechaCreacion, usuario.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insertando usuario: %w", err)
	}
	return nil
}

// GetByID retorna el usuario o nil si no existe.
func (r *UsuarioRepository) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByNombreUsuario retorna el usuario con ese nombre o nil si no existe.
func (r *UsuarioRepository) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE nombre_usuario = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, nombreUsuario))
}

// GetByCorreo retorna el usuario con ese correo o nil si no existe.
func (r *UsuarioRepository) GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE correo_electronico = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, correo))
}

// Update persiste los campos del usuario.
func (r *UsuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET
			nombre_usuario = $2, correo_electronico = $3, contrasena_hash = $4,
			rol = $5, activo = $6, fecha_actualizacion = $7
		WHERE id = $1`

	usuario.FechaActualizacion = time.Now()

	tag, err := r.db.Exec(ctx, query,
		usuario.ID, usuario.NombreUsuario, usuario.CorreoElectronico, usuario.ContrasenaHash,
		usuario.Rol, usuario.Activo, usuario.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("actualizando usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}

// List retorna la página de usuarios y el total.
func (r *UsuarioRepository) List(ctx context.Context, limit, offset int) ([]*entity.Usuario, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contando usuarios: %w", err)
	}

	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY nombre_usuario LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listando usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, 0, err
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterando usuarios: %w", err)
	}
	return usuarios, total, nil
}

// Delete elimina el usuario. Si el libro de movimientos lo referencia,
// retorna domain.ErrTieneMovimientos.
func (r *UsuarioRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTieneMovimientos
		}
		return fmt.Errorf("eliminando usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UsuarioRepository) scanOne(row pgx.Row) (*entity.Usuario, error) {
	u, err := scanUsuario(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return nil, nil
	}
	return u, err
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.NombreUsuario, &u.CorreoElectronico, &u.ContrasenaHash,
		&u.Rol, &u.Activo, &u.FechaCreacion, &u.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escaneando usuario: %w", err)
	}
	return &u, nil
}
