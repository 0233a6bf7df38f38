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

const proveedorColumns = `id, nombre, contacto_principal, telefono, correo_electronico,
	direccion, notas, fecha_creacion, fecha_actualizacion`

// ProveedorRepository implementación PostgreSQL de proveedores.
type ProveedorRepository struct {
	db Querier
}

var _ repository.ProveedorRepository = (*ProveedorRepository)(nil)

// NewProveedorRepository construye el repositorio.
func NewProveedorRepository(db Querier) *ProveedorRepository {
	return &ProveedorRepository{db: db}
}

// Create inserta el proveedor. Nombre duplicado retorna domain.ErrDuplicado.
func (r *ProveedorRepository) Create(ctx context.Context, proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + proveedorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	proveedor.FechaCreacion = now
	proveedor.FechaActualizacion = now

	_, err := r.db.Exec(ctx, query,
		proveedor.ID, proveedor.Nombre, proveedor.ContactoPrincipal, proveedor.Telefono,
		proveedor.CorreoElectronico, proveedor.Direccion, proveedor.Notas,
		proveedor.FechaCreacion, proveedor.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insertando proveedor: %w", err)
	}
	return nil
}

// GetByID retorna el proveedor o nil si no existe.
func (r *ProveedorRepository) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByNombre retorna el proveedor con ese nombre o nil si no existe.
func (r *ProveedorRepository) GetByNombre(ctx context.Context, nombre string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE nombre = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, nombre))
}

// Update persiste los campos del proveedor.
func (r *ProveedorRepository) Update(ctx context.Context, proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET
			nombre = $2, contacto_principal = $3, telefono = $4,
			correo_electronico = $5, direccion = $6, notas = $7,
			fecha_actualizacion = $8
		WHERE id = $1`

	proveedor.FechaActualizacion = time.Now()

	tag, err := r.db.Exec(ctx, query,
		proveedor.ID, proveedor.Nombre, proveedor.ContactoPrincipal, proveedor.Telefono,
		proveedor.CorreoElectronico, proveedor.Direccion, proveedor.Notas,
		proveedor.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("actualizando proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProveedorNoEncontrado
	}
	return nil
}

// List retorna la página de proveedores y el total.
func (r *ProveedorRepository) List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Proveedor, int64, error) {
	where := ""
	var args []any
	if busqueda != "" {
		where = " WHERE nombre ILIKE $1 OR contacto_principal ILIKE $1"
		args = append(args, "%"+busqueda+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM proveedores"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contando proveedores: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT "+proveedorColumns+" FROM proveedores%s ORDER BY nombre LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listando proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, 0, err
		}
		proveedores = append(proveedores, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterando proveedores: %w", err)
	}
	return proveedores, total, nil
}

// Delete elimina el proveedor. Si alguna parte o movimiento lo referencia,
// retorna domain.ErrProveedorReferenciado.
func (r *ProveedorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProveedorReferenciado
		}
		return fmt.Errorf("eliminando proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProveedorNoEncontrado
	}
	return nil
}

func (r *ProveedorRepository) scanOne(row pgx.Row) (*entity.Proveedor, error) {
	p, err := scanProveedor(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return nil, nil
	}
	return p, err
}

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(
		&p.ID, &p.Nombre, &p.ContactoPrincipal, &p.Telefono, &p.CorreoElectronico,
		&p.Direccion, &p.Notas, &p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escaneando proveedor: %w", err)
	}
	return &p, nil
}
