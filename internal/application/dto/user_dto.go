package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	CorreoElectronico string `json:"correo_electronico"`
	Contrasena        string `json:"contrasena"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CrearUsuarioRequest body para POST /api/usuarios (solo administrador).
type CrearUsuarioRequest struct {
	NombreUsuario     string `json:"nombre_usuario"`
	CorreoElectronico string `json:"correo_electronico"`
	Contrasena        string `json:"contrasena"`
	Rol               string `json:"rol,omitempty"` // por defecto "consulta"
}

// ActualizarUsuarioRequest body para PUT /api/usuarios/:id. Campos nil no cambian.
type ActualizarUsuarioRequest struct {
	CorreoElectronico *string `json:"correo_electronico,omitempty"`
	Contrasena        *string `json:"contrasena,omitempty"`
	Rol               *string `json:"rol,omitempty"`
	Activo            *bool   `json:"activo,omitempty"`
}

// UsuarioResponse representación HTTP de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID                 string    `json:"id"`
	NombreUsuario      string    `json:"nombre_usuario"`
	CorreoElectronico  string    `json:"correo_electronico"`
	Rol                string    `json:"rol"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// UsuarioListResponse listado paginado de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
