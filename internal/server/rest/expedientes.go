package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/auth"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgNotFound   = "Expediente no encontrado"
	msgDeleted    = "Expediente eliminado correctamente"
	msgListFailed = "Error al obtener expedientes"
	msgGetFailed  = "Error al obtener expediente"
	msgCreateFail = "Error al crear expediente"
	msgUpdateFail = "Error al actualizar expediente"
	msgDeleteFail = "Error al eliminar expediente"
)

// ExpedienteService is the case-file use-case layer consumed by the handlers.
type ExpedienteService interface {
	List(ctx context.Context) ([]*models.Expediente, error)
	Get(ctx context.Context, id string) (*models.Expediente, error)
	Create(ctx context.Context, in models.ExpedienteInput) (*models.Expediente, error)
	Update(ctx context.Context, id string, in models.ExpedienteInput) (*models.Expediente, error)
	Delete(ctx context.Context, id string) error
}

type expedientesResponse struct {
	Expedientes []*models.Expediente `json:"expedientes"`
}

type expedienteResponse struct {
	Expediente *models.Expediente `json:"expediente"`
}

// serviceError writes the response for a failed case-file operation.
// Validation and lookup failures carry their own message, anything else is
// logged and reported with the generic fallback.
func (h *handlers) serviceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		h.logger.Error(r.Context(), fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *handlers) listExpedientes(w http.ResponseWriter, r *http.Request) {
	list, err := h.expedientes.List(r.Context())
	if err != nil {
		h.serviceError(w, r, err, msgListFailed)
		return
	}
	if list == nil {
		list = []*models.Expediente{}
	}
	writeJSON(w, http.StatusOK, expedientesResponse{Expedientes: list})
}

func (h *handlers) getExpediente(w http.ResponseWriter, r *http.Request) {
	e, err := h.expedientes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, r, err, msgGetFailed)
		return
	}
	writeJSON(w, http.StatusOK, expedienteResponse{Expediente: e})
}

// readInput decodes a case-file payload. A missing body reads as {} so the
// per-field rules decide the outcome.
func readInput(w http.ResponseWriter, r *http.Request) (models.ExpedienteInput, bool) {
	var in models.ExpedienteInput
	if err := decodeBody(r, &in); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, msgBodyInvalid)
		return in, false
	}
	return in, true
}

func (h *handlers) createExpediente(w http.ResponseWriter, r *http.Request) {
	in, ok := readInput(w, r)
	if !ok {
		return
	}

	e, err := h.expedientes.Create(r.Context(), in)
	if err != nil {
		h.serviceError(w, r, err, msgCreateFail)
		return
	}

	username, _ := auth.UsernameFromContext(r.Context())
	h.logger.Info(r.Context(), "expediente created", "id", e.ID, "user", username)
	writeJSON(w, http.StatusCreated, expedienteResponse{Expediente: e})
}

func (h *handlers) updateExpediente(w http.ResponseWriter, r *http.Request) {
	in, ok := readInput(w, r)
	if !ok {
		return
	}

	e, err := h.expedientes.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.serviceError(w, r, err, msgUpdateFail)
		return
	}
	writeJSON(w, http.StatusOK, expedienteResponse{Expediente: e})
}

func (h *handlers) deleteExpediente(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.expedientes.Delete(r.Context(), id); err != nil {
		h.serviceError(w, r, err, msgDeleteFail)
		return
	}

	username, _ := auth.UsernameFromContext(r.Context())
	h.logger.Info(r.Context(), "expediente deleted", "id", id, "user", username)
	writeJSON(w, http.StatusOK, messageResponse{Message: msgDeleted})
}
