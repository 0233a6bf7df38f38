package entity

import "time"

// Roles de usuario.
const (
	RolAdministrador = "administrador"
	RolOperador      = "operador"
	RolConsulta      = "consulta"
)

// RolValido reporta si el rol es uno de los reconocidos.
func RolValido(rol string) bool {
	switch rol {
	case RolAdministrador, RolOperador, RolConsulta:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema con rol para RBAC.
type Usuario struct {
	ID                 string
	NombreUsuario      string // único
	CorreoElectronico  string // único
	ContrasenaHash     string
	Rol                string
	Activo             bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
