package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

const (
	msgTasksReadFailed   = "Error al leer las tareas de la base de datos"
	msgTasksCreateFailed = "Error al crear la tarea en la base de datos"
)

// TaskService backs the to-do list endpoints.
type TaskService interface {
	List(ctx context.Context) ([]*models.Task, error)
	Create(ctx context.Context, in models.TaskInput) (*models.Task, error)
}

type tasksResponse struct {
	Tasks []*models.Task `json:"tasks"`
}

type taskResponse struct {
	Task *models.Task `json:"task"`
}

// tasks dispatches on the method itself so that unsupported methods get the
// JSON 405 body instead of the router's plain one.
func (h *handlers) tasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTasks(w, r)
	case http.MethodPost:
		h.createTask(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Método HTTP no soportado: %s", r.Method))
	}
}

func (h *handlers) listTasks(w http.ResponseWriter, r *http.Request) {
	list, err := h.taskSvc.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "reading tasks", "error", err)
		writeError(w, http.StatusInternalServerError, msgTasksReadFailed)
		return
	}
	if list == nil {
		list = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, tasksResponse{Tasks: list})
}

func (h *handlers) createTask(w http.ResponseWriter, r *http.Request) {
	var in models.TaskInput
	if err := decodeBody(r, &in); err != nil {
		if errors.Is(err, errEmptyBody) {
			writeError(w, http.StatusBadRequest, msgBodyRequired)
		} else {
			writeError(w, http.StatusBadRequest, msgBodyInvalid)
		}
		return
	}

	task, err := h.taskSvc.Create(r.Context(), in)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		h.logger.Error(r.Context(), "creating task", "error", err)
		writeError(w, http.StatusInternalServerError, msgTasksCreateFailed)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: task})
}
