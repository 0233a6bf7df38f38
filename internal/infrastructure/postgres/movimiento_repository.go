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

const movimientoColumns = `id, parte_repuesto_id, usuario_id, tipo_movimiento, cantidad_movimiento,
	precio_compra_unitario, porcentaje_ganancia_aplicado, proveedor_id,
	ubicacion_origen, ubicacion_destino, descripcion_movimiento, fecha_movimiento`

// MovimientoInventarioRepository implementación PostgreSQL del libro de
// movimientos. Solo inserta y lee: el libro es append-only.
type MovimientoInventarioRepository struct {
	db Querier
}

var _ repository.MovimientoInventarioRepository = (*MovimientoInventarioRepository)(nil)

// NewMovimientoInventarioRepository construye el repositorio sobre un pool o
// una transacción.
func NewMovimientoInventarioRepository(db Querier) *MovimientoInventarioRepository {
	return &MovimientoInventarioRepository{db: db}
}

// Insert agrega el movimiento al libro. FechaMovimiento la fija el servidor.
func (r *MovimientoInventarioRepository) Insert(ctx context.Context, mov *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	mov.FechaMovimiento = time.Now()

	_, err := r.db.Exec(ctx, query,
		mov.ID, mov.ParteRepuestoID, mov.UsuarioID, mov.TipoMovimiento, mov.CantidadMovimiento,
		mov.PrecioCompraUnitario, mov.PorcentajeGananciaAplicado, mov.ProveedorID,
		mov.UbicacionOrigen, mov.UbicacionDestino, mov.DescripcionMovimiento, mov.FechaMovimiento,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProveedorNoEncontrado
		}
		return fmt.Errorf("insertando movimiento: %w", err)
	}
	return nil
}

// GetByID retorna el movimiento o nil si no existe.
func (r *MovimientoInventarioRepository) GetByID(ctx context.Context, id string) (*entity.MovimientoInventario, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario WHERE id = $1`
	mov, err := scanMovimiento(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return nil, nil
	}
	return mov, err
}

// ListByParte retorna los movimientos de una parte, más recientes primero,
// opcionalmente acotados por rango de fechas.
func (r *MovimientoInventarioRepository) ListByParte(ctx context.Context, parteID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario WHERE parte_repuesto_id = $1`
	args := []any{parteID}

	if desde != nil {
		args = append(args, *desde)
		query += fmt.Sprintf(" AND fecha_movimiento >= $%d", len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += fmt.Sprintf(" AND fecha_movimiento <= $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY fecha_movimiento DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listando movimientos: %w", err)
	}
	defer rows.Close()

	var movimientos []*entity.MovimientoInventario
	for rows.Next() {
		mov, err := scanMovimiento(rows)
		if err != nil {
			return nil, err
		}
		movimientos = append(movimientos, mov)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando movimientos: %w", err)
	}
	return movimientos, nil
}

// CountByParte retorna cuántos movimientos referencian a la parte.
func (r *MovimientoInventarioRepository) CountByParte(ctx context.Context, parteID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimientos_inventario WHERE parte_repuesto_id = $1`, parteID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("contando movimientos: %w", err)
	}
	return total, nil
}

func scanMovimiento(row pgx.Row) (*entity.MovimientoInventario, error) {
	var m entity.MovimientoInventario
	err := row.Scan(
		&m.ID, &m.ParteRepuestoID, &m.UsuarioID, &m.TipoMovimiento, &m.CantidadMovimiento,
		&m.PrecioCompraUnitario, &m.PorcentajeGananciaAplicado, &m.ProveedorID,
		&m.UbicacionOrigen, &m.UbicacionDestino, &m.DescripcionMovimiento, &m.FechaMovimiento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escaneando movimiento: %w", err)
	}
	return &m, nil
}
