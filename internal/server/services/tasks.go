package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/tasks"
	"github.com/google/uuid"
)

const (
	msgTituloRequerido = `El campo "titulo" es requerido y debe ser un string`
	msgTituloVacio     = `El campo "titulo" no puede estar vacío`
)

type TaskService struct {
	repo  tasks.Repository
	newID func() string
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo, newID: uuid.NewString}
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	return s.repo.ScanAll(ctx)
}

// Create stores a new, not yet completed task.
func (s *TaskService) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	if !in.Titulo.IsString || in.Titulo.Value == "" {
		return nil, common.NewValidationError("titulo", msgTituloRequerido)
	}
	titulo := strings.TrimSpace(in.Titulo.Value)
	if titulo == "" {
		return nil, common.NewValidationError("titulo", msgTituloVacio)
	}

	t := &models.Task{ID: s.newID(), Titulo: titulo}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
