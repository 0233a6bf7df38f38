package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD de proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor. El nombre es único.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		ContactoPrincipal:  in.ContactoPrincipal,
		Telefono:           in.Telefono,
		CorreoElectronico:  in.CorreoElectronico,
		Direccion:          in.Direccion,
		Notas:              in.Notas,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := uc.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrProveedorNoEncontrado
	}
	return toProveedorResponse(proveedor), nil
}

// Update actualiza un proveedor. Un cambio de nombre verifica unicidad.
func (uc *ProveedorUseCase) Update(ctx context.Context, id string, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrProveedorNoEncontrado
	}
	if in.Nombre != nil && *in.Nombre != proveedor.Nombre {
		existente, err := uc.repo.GetByNombre(ctx, *in.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, domain.ErrDuplicado
		}
		proveedor.Nombre = *in.Nombre
	}
	if in.ContactoPrincipal != nil {
		proveedor.ContactoPrincipal = *in.ContactoPrincipal
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.CorreoElectronico != nil {
		proveedor.CorreoElectronico = *in.CorreoElectronico
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	if in.Notas != nil {
		proveedor.Notas = *in.Notas
	}
	proveedor.FechaActualizacion = time.Now()

	if err := uc.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// List lista proveedores con búsqueda y paginación.
func (uc *ProveedorUseCase) List(ctx context.Context, busqueda string, limit, offset int) (*dto.ProveedorListResponse, error) {
	proveedores, total, err := uc.repo.List(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		items = append(items, *toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un proveedor. Falla con ErrProveedorReferenciado si alguna
// parte lo referencia (la FK lo garantiza a nivel de BD).
func (uc *ProveedorUseCase) Delete(ctx context.Context, id string) error {
	proveedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrProveedorNoEncontrado
	}
	return uc.repo.Delete(ctx, id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:                 p.ID,
		Nombre:             p.Nombre,
		ContactoPrincipal:  p.ContactoPrincipal,
		Telefono:           p.Telefono,
		CorreoElectronico:  p.CorreoElectronico,
		Direccion:          p.Direccion,
		Notas:              p.Notas,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
	}
}
