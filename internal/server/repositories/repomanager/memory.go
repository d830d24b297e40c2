package repomanager

import (
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/expedientes"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/tasks"
)

type MemoryRepositoryManager struct {
	expedientes *expedientes.MemoryRepository
	tasks       *tasks.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		expedientes: expedientes.NewMemoryRepository(),
		tasks:       tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Expedientes() expedientes.Repository { return m.expedientes }
func (m *MemoryRepositoryManager) Tasks() tasks.Repository             { return m.tasks }
func (m *MemoryRepositoryManager) Close() error                        { return nil }
