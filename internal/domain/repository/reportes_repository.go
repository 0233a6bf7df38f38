package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
)

// EstadisticasInventario son los KPIs del dashboard en una sola lectura.
type EstadisticasInventario struct {
	ValorTotalInventario decimal.Decimal // Σ cantidad * precio_compra
	ItemsUnicos          int64
	ProveedoresActivos   int64
	ItemsBajoStock       int64
}

// ValorCategoria valor de inventario agrupado por categoría.
type ValorCategoria struct {
	Categoria  string
	ValorTotal decimal.Decimal
}

// ReportesRepository consultas de solo lectura sobre filas ya confirmadas.
// Las proyecciones nunca escriben estado; las agregaciones corren en SQL.
type ReportesRepository interface {
	EstadisticasDashboard(ctx context.Context) (*EstadisticasInventario, error)
	ListBajoStock(ctx context.Context) ([]*entity.ParteRepuesto, error)
	ValorPorCategoria(ctx context.Context) ([]ValorCategoria, error)
}
