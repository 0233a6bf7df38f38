package dto

import "time"

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre            string `json:"nombre"`
	ContactoPrincipal string `json:"contacto_principal,omitempty"`
	Telefono          string `json:"telefono,omitempty"`
	CorreoElectronico string `json:"correo_electronico,omitempty"`
	Direccion         string `json:"direccion,omitempty"`
	Notas             string `json:"notas,omitempty"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/:id. Campos nil no cambian.
type ActualizarProveedorRequest struct {
	Nombre            *string `json:"nombre,omitempty"`
	ContactoPrincipal *string `json:"contacto_principal,omitempty"`
	Telefono          *string `json:"telefono,omitempty"`
	CorreoElectronico *string `json:"correo_electronico,omitempty"`
	Direccion         *string `json:"direccion,omitempty"`
	Notas             *string `json:"notas,omitempty"`
}

// ProveedorResponse representación HTTP de un proveedor.
type ProveedorResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	ContactoPrincipal  string    `json:"contacto_principal,omitempty"`
	Telefono           string    `json:"telefono,omitempty"`
	CorreoElectronico  string    `json:"correo_electronico,omitempty"`
	Direccion          string    `json:"direccion,omitempty"`
	Notas              string    `json:"notas,omitempty"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// ProveedorListResponse listado paginado de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
