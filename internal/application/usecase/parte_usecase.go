package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/pricing"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ParteUseCase casos de uso CRUD del catálogo de partes/repuestos.
// La cantidad NO se toca por este camino: la muta solo el motor de
// movimientos. Los precios sí, y cada cambio recalcula el precio de venta
// sugerido con el mismo calculador que usa la entrada de stock.
type ParteUseCase struct {
	repo    repository.ParteRepuestoRepository
	movRepo repository.MovimientoInventarioRepository
}

// NewParteUseCase construye el caso de uso.
func NewParteUseCase(repo repository.ParteRepuestoRepository, movRepo repository.MovimientoInventarioRepository) *ParteUseCase {
	return &ParteUseCase{repo: repo, movRepo: movRepo}
}

// Create crea una parte/repuesto. La cantidad inicial siempre es 0.
func (uc *ParteUseCase) Create(ctx context.Context, in dto.CrearParteRequest) (*dto.ParteResponse, error) {
	if in.Nombre == "" || in.NumeroParte == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CantidadMinima < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PrecioCompra != nil && in.PrecioCompra.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PorcentajeGanancia != nil && in.PorcentajeGanancia.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.repo.GetByNumeroParte(ctx, in.NumeroParte)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}

	now := time.Now()
	parte := &entity.ParteRepuesto{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		Descripcion:        in.Descripcion,
		NumeroParte:        in.NumeroParte,
		Cantidad:           0,
		CantidadMinima:     in.CantidadMinima,
		Ubicacion:          in.Ubicacion,
		PrecioCompra:       in.PrecioCompra,
		PorcentajeGanancia: in.PorcentajeGanancia,
		UnidadMedida:       in.UnidadMedida,
		Categoria:          in.Categoria,
		ProveedorID:        in.ProveedorID,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	parte.PrecioVentaSugerido = pricing.CalcularPrecioVenta(parte.PrecioCompra, parte.PorcentajeGanancia)

	if err := uc.repo.Create(ctx, parte); err != nil {
		return nil, err
	}
	return toParteResponse(parte), nil
}

// GetByID obtiene una parte por ID.
func (uc *ParteUseCase) GetByID(ctx context.Context, id string) (*dto.ParteResponse, error) {
	parte, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parte == nil {
		return nil, domain.ErrParteNoEncontrada
	}
	return toParteResponse(parte), nil
}

// Update actualiza campos de catálogo (nunca la cantidad). Si cambia el
// precio de compra o el porcentaje de ganancia, recalcula el precio de venta
// sugerido: es el segundo punto de invocación legítimo del calculador,
// distinto del camino de entrada del motor de movimientos.
func (uc *ParteUseCase) Update(ctx context.Context, id string, in dto.ActualizarParteRequest) (*dto.ParteResponse, error) {
	parte, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parte == nil {
		return nil, domain.ErrParteNoEncontrada
	}

	if in.NumeroParte != nil && *in.NumeroParte != parte.NumeroParte {
		existente, err := uc.repo.GetByNumeroParte(ctx, *in.NumeroParte)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
		parte.NumeroParte = *in.NumeroParte
	}
	if in.Nombre != nil {
		parte.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		parte.Descripcion = *in.Descripcion
	}
	if in.CantidadMinima != nil {
		if *in.CantidadMinima < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		parte.CantidadMinima = *in.CantidadMinima
	}
	if in.Ubicacion != nil {
		parte.Ubicacion = *in.Ubicacion
	}
	if in.PrecioCompra != nil {
		if in.PrecioCompra.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		parte.PrecioCompra = in.PrecioCompra
	}
	if in.PorcentajeGanancia != nil {
		if in.PorcentajeGanancia.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		parte.PorcentajeGanancia = in.PorcentajeGanancia
	}
	if in.UnidadMedida != nil {
		parte.UnidadMedida = *in.UnidadMedida
	}
	if in.Categoria != nil {
		parte.Categoria = *in.Categoria
	}
	if in.ProveedorID != nil {
		parte.ProveedorID = in.ProveedorID
	}
	if in.Activo != nil {
		parte.Activo = *in.Activo
	}
	if in.ImagenURL != nil {
		parte.ImagenURL = *in.ImagenURL
	}
	if in.ManualURL != nil {
		parte.ManualURL = *in.ManualURL
	}

	// Recalcular siempre con los valores finales (idempotente).
	parte.PrecioVentaSugerido = pricing.CalcularPrecioVenta(parte.PrecioCompra, parte.PorcentajeGanancia)
	parte.FechaActualizacion = time.Now()

	if err := uc.repo.Update(ctx, parte); err != nil {
		return nil, err
	}
	return toParteResponse(parte), nil
}

// List lista partes con búsqueda y paginación.
func (uc *ParteUseCase) List(ctx context.Context, filtro repository.ListadoPartesFiltro) (*dto.ParteListResponse, error) {
	partes, total, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ParteResponse, 0, len(partes))
	for _, p := range partes {
		items = append(items, *toParteResponse(p))
	}
	return &dto.ParteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset, Total: total},
	}, nil
}

// Delete elimina una parte. Se rechaza mientras existan movimientos que la
// referencien: el libro es inmutable y no puede quedar huérfano.
func (uc *ParteUseCase) Delete(ctx context.Context, id string) error {
	parte, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if parte == nil {
		return domain.ErrParteNoEncontrada
	}
	movimientos, err := uc.movRepo.CountByParte(ctx, id)
	if err != nil {
		return err
	}
	if movimientos > 0 {
		return domain.ErrTieneMovimientos
	}
	return uc.repo.Delete(ctx, id)
}

func toParteResponse(p *entity.ParteRepuesto) *dto.ParteResponse {
	if p == nil {
		return nil
	}
	return &dto.ParteResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		NumeroParte:         p.NumeroParte,
		Cantidad:            p.Cantidad,
		CantidadMinima:      p.CantidadMinima,
		Ubicacion:           p.Ubicacion,
		PrecioCompra:        p.PrecioCompra,
		PorcentajeGanancia:  p.PorcentajeGanancia,
		PrecioVentaSugerido: p.PrecioVentaSugerido,
		UnidadMedida:        p.UnidadMedida,
		Categoria:           p.Categoria,
		ProveedorID:         p.ProveedorID,
		Activo:              p.Activo,
		ImagenURL:           p.ImagenURL,
		ManualURL:           p.ManualURL,
		BajoStock:           p.BajoStock(),
		FechaCreacion:       p.FechaCreacion,
		FechaActualizacion:  p.FechaActualizacion,
	}
}
