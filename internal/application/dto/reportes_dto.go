package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse KPIs del dashboard en una sola llamada.
type DashboardStatsResponse struct {
	ValorTotalInventario decimal.Decimal `json:"valor_total_inventario"`
	ItemsUnicos          int64           `json:"items_unicos"`
	ProveedoresActivos   int64           `json:"proveedores_activos"`
	ItemsBajoStockCount  int64           `json:"items_bajo_stock_count"`
}

// ValorCategoriaDTO valor de inventario de una categoría.
type ValorCategoriaDTO struct {
	Categoria  string          `json:"categoria"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// ValorInventarioResponse reporte de valor del inventario con desglose.
type ValorInventarioResponse struct {
	ValorTotalInventario decimal.Decimal     `json:"valor_total_inventario"`
	ValorPorCategoria    []ValorCategoriaDTO `json:"valor_por_categoria"`
}
