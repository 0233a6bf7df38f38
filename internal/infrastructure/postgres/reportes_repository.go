package postgres

import (
	"context"
	"fmt"

	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ReportesRepository consultas de reportes en SQL puro. Las agregaciones
// corren en la base; solo se materializan los resultados.
type ReportesRepository struct {
	db Querier
}

var _ repository.ReportesRepository = (*ReportesRepository)(nil)

// NewReportesRepository construye el repositorio.
func NewReportesRepository(db Querier) *ReportesRepository {
	return &ReportesRepository{db: db}
}

// EstadisticasDashboard retorna los KPIs del dashboard en una sola consulta.
func (r *ReportesRepository) EstadisticasDashboard(ctx context.Context) (*repository.EstadisticasInventario, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(cantidad * precio_compra), 0) FROM partes_repuestos),
			(SELECT COUNT(*) FROM partes_repuestos),
			(SELECT COUNT(*) FROM proveedores),
			(SELECT COUNT(*) FROM partes_repuestos
			 WHERE cantidad_minima > 0 AND cantidad <= cantidad_minima)`

	var stats repository.EstadisticasInventario
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.ValorTotalInventario, &stats.ItemsUnicos,
		&stats.ProveedoresActivos, &stats.ItemsBajoStock,
	)
	if err != nil {
		return nil, fmt.Errorf("consultando estadísticas del dashboard: %w", err)
	}
	return &stats, nil
}

// ListBajoStock retorna las partes en o por debajo de su umbral mínimo,
// las más comprometidas primero.
func (r *ReportesRepository) ListBajoStock(ctx context.Context) ([]*entity.ParteRepuesto, error) {
	query := `SELECT ` + parteColumns + `
		FROM partes_repuestos
		WHERE cantidad_minima > 0 AND cantidad <= cantidad_minima
		ORDER BY cantidad - cantidad_minima, nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listando partes bajo stock: %w", err)
	}
	defer rows.Close()

	var partes []*entity.ParteRepuesto
	for rows.Next() {
		parte, err := scanParte(rows)
		if err != nil {
			return nil, err
		}
		partes = append(partes, parte)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando partes bajo stock: %w", err)
	}
	return partes, nil
}

// ValorPorCategoria retorna el valor de inventario agrupado por categoría.
// Las partes sin categoría se agrupan bajo cadena vacía.
func (r *ReportesRepository) ValorPorCategoria(ctx context.Context) ([]repository.ValorCategoria, error) {
	query := `
		SELECT categoria, COALESCE(SUM(cantidad * precio_compra), 0) AS valor
		FROM partes_repuestos
		GROUP BY categoria
		ORDER BY valor DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("consultando valor por categoría: %w", err)
	}
	defer rows.Close()

	var valores []repository.ValorCategoria
	for rows.Next() {
		var v repository.ValorCategoria
		if err := rows.Scan(&v.Categoria, &v.ValorTotal); err != nil {
			return nil, fmt.Errorf("escaneando valor por categoría: %w", err)
		}
		valores = append(valores, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando valor por categoría: %w", err)
	}
	return valores, nil
}
