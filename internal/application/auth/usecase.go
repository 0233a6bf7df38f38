package auth

import (
	"context"

	"github.com/tallerpro/repuestos-api/internal/application/dto"
	"github.com/tallerpro/repuestos-api/internal/domain"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
	"github.com/tallerpro/repuestos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación (login).
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica correo/contraseña, genera el JWT con rol y retorna token +
// usuario. Usuarios inactivos no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.CorreoElectronico == "" || in.Contrasena == "" {
		return nil, domain.ErrEntradaInvalida
	}
	usuario, err := uc.usuarioRepo.GetByCorreo(ctx, in.CorreoElectronico)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !usuario.Activo {
		return nil, domain.ErrAccesoDenegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:                 usuario.ID,
			NombreUsuario:      usuario.NombreUsuario,
			CorreoElectronico:  usuario.CorreoElectronico,
			Rol:                usuario.Rol,
			Activo:             usuario.Activo,
			FechaCreacion:      usuario.FechaCreacion,
			FechaActualizacion: usuario.FechaActualizacion,
		},
	}, nil
}
