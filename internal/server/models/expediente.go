// Package models defines the server-side records and request payloads.
package models

// Estado is the lifecycle status of an expediente.
type Estado string

const (
	EstadoActivo     Estado = "Activo"
	EstadoEnProgreso Estado = "En progreso"
	EstadoCerrado    Estado = "Cerrado"
)

// Estados lists every valid status in display order.
var Estados = []Estado{EstadoActivo, EstadoEnProgreso, EstadoCerrado}

func (e Estado) Valid() bool {
	switch e {
	case EstadoActivo, EstadoEnProgreso, EstadoCerrado:
		return true
	}
	return false
}

// Expediente is a case file. CreatedAt and UpdatedAt are RFC 3339 UTC
// timestamps with millisecond precision; they are empty only for rows that
// were not written by this service.
type Expediente struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Estado      Estado `json:"estado"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ExpedienteInput is the create/update payload. Each field records whether
// it was present and whether it held a JSON string.
type ExpedienteInput struct {
	Nombre      OptionalString `json:"nombre"`
	Descripcion OptionalString `json:"descripcion"`
	Estado      OptionalString `json:"estado"`
}
