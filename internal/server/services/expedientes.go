// Package services contains the server-side business logic: field
// validation, defaults and timestamps for expedientes and tasks, and the
// login flow. Storage is reached only through repository interfaces.
package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/expedientes"
	"github.com/dmitrijs2005/expedientes/internal/timex"
	"github.com/google/uuid"
)

// TimestampLayout renders UTC instants the way they are stored: sortable
// text with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	msgNombreRequerido      = `El campo "nombre" es requerido`
	msgDescripcionRequerida = `El campo "descripcion" es requerido`
	msgNombreNoVacio        = `El campo "nombre" debe ser un string no vacío`
	msgDescripcionString    = `El campo "descripcion" debe ser un string`
	msgEstadoInvalido       = `El campo "estado" debe ser Activo, En progreso o Cerrado`
	msgIDRequerido          = `El campo "id" es requerido`
)

// ExpedienteService implements list/get/create/update/delete of case files.
// Concurrent updates of the same id are last-write-wins.
type ExpedienteService struct {
	repo  expedientes.Repository
	now   timex.Clock
	newID func() string
}

func NewExpedienteService(repo expedientes.Repository) *ExpedienteService {
	return &ExpedienteService{
		repo:  repo,
		now:   timex.UTCNow,
		newID: uuid.NewString,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *ExpedienteService) WithClock(clock timex.Clock) *ExpedienteService {
	s.now = clock
	return s
}

// WithIDGenerator replaces the id source. Used by tests.
func (s *ExpedienteService) WithIDGenerator(gen func() string) *ExpedienteService {
	s.newID = gen
	return s
}

func (s *ExpedienteService) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

// List returns every stored record in no particular order.
func (s *ExpedienteService) List(ctx context.Context) ([]*models.Expediente, error) {
	return s.repo.ScanAll(ctx)
}

// Get returns one record or common.ErrorNotFound.
func (s *ExpedienteService) Get(ctx context.Context, id string) (*models.Expediente, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.NewValidationError("id", msgIDRequerido)
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates in, fills defaults and stores a new record.
//
// nombre must be a non-blank string. descripcion must be present and a
// string; an empty string is accepted. An absent or unknown estado becomes
// Activo.
func (s *ExpedienteService) Create(ctx context.Context, in models.ExpedienteInput) (*models.Expediente, error) {
	if !in.Nombre.IsString || strings.TrimSpace(in.Nombre.Value) == "" {
		return nil, common.NewValidationError("nombre", msgNombreRequerido)
	}
	if !in.Descripcion.IsString {
		return nil, common.NewValidationError("descripcion", msgDescripcionRequerida)
	}

	estado := models.Estado(in.Estado.Value)
	if !in.Estado.IsString || !estado.Valid() {
		estado = models.EstadoActivo
	}

	now := s.timestamp()
	e := &models.Expediente{
		ID:          s.newID(),
		Nombre:      strings.TrimSpace(in.Nombre.Value),
		Descripcion: strings.TrimSpace(in.Descripcion.Value),
		Estado:      estado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies the fields present in in to an existing record and
// refreshes updatedAt. A present descripcion that trims to "" is accepted,
// unlike nombre.
func (s *ExpedienteService) Update(ctx context.Context, id string, in models.ExpedienteInput) (*models.Expediente, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre.Present && (!in.Nombre.IsString || strings.TrimSpace(in.Nombre.Value) == "") {
		return nil, common.NewValidationError("nombre", msgNombreNoVacio)
	}
	if in.Descripcion.Present && !in.Descripcion.IsString {
		return nil, common.NewValidationError("descripcion", msgDescripcionString)
	}
	if in.Estado.Present && (!in.Estado.IsString || !models.Estado(in.Estado.Value).Valid()) {
		return nil, common.NewValidationError("estado", msgEstadoInvalido)
	}

	updated := *current
	if in.Nombre.Present {
		updated.Nombre = strings.TrimSpace(in.Nombre.Value)
	}
	if in.Descripcion.Present {
		updated.Descripcion = strings.TrimSpace(in.Descripcion.Value)
	}
	if in.Estado.Present {
		updated.Estado = models.Estado(in.Estado.Value)
	}
	updated.UpdatedAt = s.timestamp()

	if err := s.repo.Put(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an existing record; unknown ids yield common.ErrorNotFound.
func (s *ExpedienteService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}
