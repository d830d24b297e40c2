package expedientes

import (
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
)

// ToItem maps a record to its attribute map. Timestamps are only written
// when set.
func ToItem(e *models.Expediente) dynamo.Item {
	item := dynamo.Item{
		"id":          dynamo.S(e.ID),
		"nombre":      dynamo.S(e.Nombre),
		"descripcion": dynamo.S(e.Descripcion),
		"estado":      dynamo.S(string(e.Estado)),
	}
	if e.CreatedAt != "" {
		item["createdAt"] = dynamo.S(e.CreatedAt)
	}
	if e.UpdatedAt != "" {
		item["updatedAt"] = dynamo.S(e.UpdatedAt)
	}
	return item
}

// FromItem is the inverse of ToItem. Missing or mistyped attributes read as
// empty strings, a missing estado reads as Activo.
func FromItem(item dynamo.Item) *models.Expediente {
	estado := models.Estado(dynamo.StringAttr(item, "estado"))
	if estado == "" {
		estado = models.EstadoActivo
	}
	return &models.Expediente{
		ID:          dynamo.StringAttr(item, "id"),
		Nombre:      dynamo.StringAttr(item, "nombre"),
		Descripcion: dynamo.StringAttr(item, "descripcion"),
		Estado:      estado,
		CreatedAt:   dynamo.StringAttr(item, "createdAt"),
		UpdatedAt:   dynamo.StringAttr(item, "updatedAt"),
	}
}
