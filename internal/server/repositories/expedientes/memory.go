package expedientes

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

// MemoryRepository keeps records in process memory. It is meant for local
// runs and tests; records are copied in and out.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Expediente
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Expediente)}
}

func (r *MemoryRepository) ScanAll(ctx context.Context) ([]*models.Expediente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Expediente, 0, len(r.items))
	for _, e := range r.items {
		result = append(result, &e)
	}
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Expediente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}

func (r *MemoryRepository) Put(ctx context.Context, e *models.Expediente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[e.ID] = *e
	return nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
