package usecase

import (
	"context"
	"time"

	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ReportesUseCase proyecciones de solo lectura sobre catálogo y libro de
// movimientos. Lee únicamente filas confirmadas; nunca escribe estado.
type ReportesUseCase struct {
	reportesRepo repository.ReportesRepository
	movRepo      repository.MovimientoInventarioRepository
}

// NewReportesUseCase construye el caso de uso.
func NewReportesUseCase(reportesRepo repository.ReportesRepository, movRepo repository.MovimientoInventarioRepository) *ReportesUseCase {
	return &ReportesUseCase{reportesRepo: reportesRepo, movRepo: movRepo}
}

// DashboardStats devuelve los KPIs del dashboard en una sola llamada.
func (uc *ReportesUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.reportesRepo.EstadisticasDashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		ValorTotalInventario: stats.ValorTotalInventario,
		ItemsUnicos:          stats.ItemsUnicos,
		ProveedoresActivos:   stats.ProveedoresActivos,
		ItemsBajoStockCount:  stats.ItemsBajoStock,
	}, nil
}

// BajoStock lista detallada de partes en o por debajo de su umbral mínimo
// (ignora partes con umbral 0, es decir sin seguimiento).
func (uc *ReportesUseCase) BajoStock(ctx context.Context) ([]dto.ParteResponse, error) {
	partes, err := uc.reportesRepo.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ParteResponse, 0, len(partes))
	for _, p := range partes {
		items = append(items, *toParteResponse(p))
	}
	return items, nil
}

// ValorInventario reporte del valor del inventario con desglose por categoría.
func (uc *ReportesUseCase) ValorInventario(ctx context.Context) (*dto.ValorInventarioResponse, error) {
	stats, err := uc.reportesRepo.EstadisticasDashboard(ctx)
	if err != nil {
		return nil, err
	}
	porCategoria, err := uc.reportesRepo.ValorPorCategoria(ctx)
	if err != nil {
		return nil, err
	}
	categorias := make([]dto.ValorCategoriaDTO, 0, len(porCategoria))
	for _, c := range porCategoria {
		categorias = append(categorias, dto.ValorCategoriaDTO{Categoria: c.Categoria, ValorTotal: c.ValorTotal})
	}
	return &dto.ValorInventarioResponse{
		ValorTotalInventario: stats.ValorTotalInventario,
		ValorPorCategoria:    categorias,
	}, nil
}

// MovimientosPorParte historial de movimientos de una parte en un rango de
// fechas, paginado.
func (uc *ReportesUseCase) MovimientosPorParte(ctx context.Context, parteID string, desde, hasta *time.Time, limit, offset int) (*dto.MovimientoListResponse, error) {
	movimientos, err := uc.movRepo.ListByParte(ctx, parteID, desde, hasta, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		items = append(items, dto.MovimientoResponse{
			ID:                         m.ID,
			ParteRepuestoID:            m.ParteRepuestoID,
			UsuarioID:                  m.UsuarioID,
			TipoMovimiento:             m.TipoMovimiento,
			CantidadMovimiento:         m.CantidadMovimiento,
			PrecioCompraUnitario:       m.PrecioCompraUnitario,
			PorcentajeGananciaAplicado: m.PorcentajeGananciaAplicado,
			ProveedorID:                m.ProveedorID,
			UbicacionOrigen:            m.UbicacionOrigen,
			UbicacionDestino:           m.UbicacionDestino,
			DescripcionMovimiento:      m.DescripcionMovimiento,
			FechaMovimiento:            m.FechaMovimiento,
		})
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
