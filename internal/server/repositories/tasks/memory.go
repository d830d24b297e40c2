package tasks

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Task)}
}

func (r *MemoryRepository) ScanAll(ctx context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Task, 0, len(r.items))
	for _, t := range r.items {
		result = append(result, &t)
	}
	return result, nil
}

func (r *MemoryRepository) Put(ctx context.Context, t *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = *t
	return nil
}
