package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

const parteColumns = `id, nombre, descripcion, numero_parte, cantidad, cantidad_minima,
	ubicacion, precio_compra, porcentaje_ganancia, precio_venta_sugerido,
	unidad_medida, categoria, proveedor_id, activo, imagen_url, manual_url,
	fecha_creacion, fecha_actualizacion`

// ParteRepuestoRepository implementación PostgreSQL del catálogo de partes.
type ParteRepuestoRepository struct {
	db Querier
}

var _ repository.ParteRepuestoRepository = (*ParteRepuestoRepository)(nil)

// NewParteRepuestoRepository construye el repositorio sobre un pool o una
// transacción.
func NewParteRepuestoRepository(db Querier) *ParteRepuestoRepository {
	return &ParteRepuestoRepository{db: db}
}

// Create inserta la parte. Un numero_parte duplicado retorna domain.ErrDuplicado.
func (r *ParteRepuestoRepository) Create(ctx context.Context, parte *entity.ParteRepuesto) error {
	query := `
		INSERT INTO partes_repuestos (` + parteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	now := time.Now()
	parte.FechaCreacion = now
	parte.FechaActualizacion = now

	_, err := r.db.Exec(ctx, query,
		parte.ID, parte.Nombre, parte.Descripcion, parte.NumeroParte,
		parte.Cantidad, parte.CantidadMinima, parte.Ubicacion,
		parte.PrecioCompra, parte.PorcentajeGanancia, parte.PrecioVentaSugerido,
		parte.UnidadMedida, parte.Categoria, parte.ProveedorID, parte.Activo,
		parte.ImagenURL, parte.ManualURL, parte.FechaCreacion, parte.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProveedorNoEncontrado
		}
		return fmt.Errorf("insertando parte: %w", err)
	}
	return nil
}

// GetByID retorna la parte o nil si no existe.
func (r *ParteRepuestoRepository) GetByID(ctx context.Context, id string) (*entity.ParteRepuesto, error) {
	query := `SELECT ` + parteColumns + ` FROM partes_repuestos WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetForUpdate carga la parte bloqueando su fila. Debe llamarse dentro de una
// transacción; el lock se libera en commit o rollback.
func (r *ParteRepuestoRepository) GetForUpdate(ctx context.Context, id string) (*entity.ParteRepuesto, error) {
	query := `SELECT ` + parteColumns + ` FROM partes_repuestos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByNumeroParte retorna la parte con ese número o nil si no existe.
func (r *ParteRepuestoRepository) GetByNumeroParte(ctx context.Context, numeroParte string) (*entity.ParteRepuesto, error) {
	query := `SELECT ` + parteColumns + ` FROM partes_repuestos WHERE numero_parte = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, numeroParte))
}

// Update persiste los campos de catálogo. No toca cantidad: esa columna es
// exclusiva del motor de movimientos.
func (r *ParteRepuestoRepository) Update(ctx context.Context, parte *entity.ParteRepuesto) error {
	query := `
		UPDATE partes_repuestos SET
			nombre = $2, descripcion = $3, numero_parte = $4, cantidad_minima = $5,
			ubicacion = $6, precio_compra = $7, porcentaje_ganancia = $8,
			precio_venta_sugerido = $9, unidad_medida = $10, categoria = $11,
			proveedor_id = $12, activo = $13, imagen_url = $14, manual_url = $15,
			fecha_actualizacion = $16
		WHERE id = $1`

	parte.FechaActualizacion = time.Now()

	tag, err := r.db.Exec(ctx, query,
		parte.ID, parte.Nombre, parte.Descripcion, parte.NumeroParte,
		parte.CantidadMinima, parte.Ubicacion,
		parte.PrecioCompra, parte.PorcentajeGanancia, parte.PrecioVentaSugerido,
		parte.UnidadMedida, parte.Categoria, parte.ProveedorID, parte.Activo,
		parte.ImagenURL, parte.ManualURL, parte.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProveedorNoEncontrado
		}
		return fmt.Errorf("actualizando parte: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParteNoEncontrada
	}
	return nil
}

// Save persiste los campos que muta el motor de movimientos: cantidad,
// ubicación y precios. Se usa dentro de la transacción del movimiento, con la
// fila ya bloqueada por GetForUpdate.
func (r *ParteRepuestoRepository) Save(ctx context.Context, parte *entity.ParteRepuesto) error {
	query := `
		UPDATE partes_repuestos SET
			cantidad = $2, ubicacion = $3, precio_compra = $4,
			porcentaje_ganancia = $5, precio_venta_sugerido = $6,
			fecha_actualizacion = $7
		WHERE id = $1`

	parte.FechaActualizacion = time.Now()

	tag, err := r.db.Exec(ctx, query,
		parte.ID, parte.Cantidad, parte.Ubicacion,
		parte.PrecioCompra, parte.PorcentajeGanancia, parte.PrecioVentaSugerido,
		parte.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("guardando parte: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParteNoEncontrada
	}
	return nil
}

// List retorna la página de partes y el total que satisface el filtro.
func (r *ParteRepuestoRepository) List(ctx context.Context, filtro repository.ListadoPartesFiltro) ([]*entity.ParteRepuesto, int64, error) {
	var conds []string
	var args []any

	if filtro.Busqueda != "" {
		args = append(args, "%"+filtro.Busqueda+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(nombre ILIKE $%d OR numero_parte ILIKE $%d OR descripcion ILIKE $%d)", n, n, n))
	}
	if filtro.Categoria != "" {
		args = append(args, filtro.Categoria)
		conds = append(conds, fmt.Sprintf("categoria = $%d", len(args)))
	}
	if filtro.SoloBajoStock {
		conds = append(conds, "cantidad_minima > 0 AND cantidad <= cantidad_minima")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM partes_repuestos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contando partes: %w", err)
	}

	args = append(args, filtro.Limit, filtro.Offset)
	query := fmt.Sprintf(
		"SELECT "+parteColumns+" FROM partes_repuestos%s ORDER BY nombre LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listando partes: %w", err)
	}
	defer rows.Close()

	var partes []*entity.ParteRepuesto
	for rows.Next() {
		parte, err := scanParte(rows)
		if err != nil {
			return nil, 0, err
		}
		partes = append(partes, parte)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterando partes: %w", err)
	}
	return partes, total, nil
}

// Delete elimina la parte. Si el libro de movimientos la referencia, retorna
// domain.ErrTieneMovimientos.
func (r *ParteRepuestoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM partes_repuestos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTieneMovimientos
		}
		return fmt.Errorf("eliminando parte: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParteNoEncontrada
	}
	return nil
}

func (r *ParteRepuestoRepository) scanOne(row pgx.Row) (*entity.ParteRepuesto, error) {
	parte, err := scanParte(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return nil, nil
	}
	return parte, err
}

func scanParte(row pgx.Row) (*entity.ParteRepuesto, error) {
	var p entity.ParteRepuesto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.NumeroParte, &p.Cantidad, &p.CantidadMinima,
		&p.Ubicacion, &p.PrecioCompra, &p.PorcentajeGanancia, &p.PrecioVentaSugerido,
		&p.UnidadMedida, &p.Categoria, &p.ProveedorID, &p.Activo, &p.ImagenURL, &p.ManualURL,
		&p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escaneando parte: %w", err)
	}
	return &p, nil
}
