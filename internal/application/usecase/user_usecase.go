package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase casos de uso CRUD de usuarios (solo administrador).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.NombreUsuario == "" || in.CorreoElectronico == "" || in.Contrasena == "" {
		return nil, domain.ErrEntradaInvalida
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolConsulta
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrEntradaInvalida
	}
	if existente, err := uc.repo.GetByNombreUsuario(ctx, in.NombreUsuario); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicado
	}
	if existente, err := uc.repo.GetByCorreo(ctx, in.CorreoElectronico); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:                 uuid.New().String(),
		NombreUsuario:      in.NombreUsuario,
		CorreoElectronico:  in.CorreoElectronico,
		ContrasenaHash:     string(hash),
		Rol:                rol,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := uc.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return toUsuarioResponse(usuario), nil
}

// Update actualiza correo, contraseña, rol o estado activo.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if in.CorreoElectronico != nil {
		usuario.CorreoElectronico = *in.CorreoElectronico
	}
	if in.Contrasena != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.ContrasenaHash = string(hash)
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrEntradaInvalida
		}
		usuario.Rol = *in.Rol
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	usuario.FechaActualizacion = time.Now()
	if err := uc.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(ctx context.Context, limit, offset int) (*dto.UsuarioListResponse, error) {
	usuarios, total, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		items = append(items, *toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un usuario por ID.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) error {
	usuario, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	return uc.repo.Delete(ctx, id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:                 u.ID,
		NombreUsuario:      u.NombreUsuario,
		CorreoElectronico:  u.CorreoElectronico,
		Rol:                u.Rol,
		Activo:             u.Activo,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
	}
}
