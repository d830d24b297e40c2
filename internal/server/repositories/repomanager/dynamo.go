package repomanager

import (
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/expedientes"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
)

// DynamoRepositoryManager shares one client between both tables.
type DynamoRepositoryManager struct {
	expedientes *expedientes.DynamoRepository
	tasks       *tasks.DynamoRepository
}

func NewDynamoRepositoryManager(client dynamo.API, expedientesTable, tasksTable string) *DynamoRepositoryManager {
	return &DynamoRepositoryManager{
		expedientes: expedientes.NewDynamoRepository(client, expedientesTable),
		tasks:       tasks.NewDynamoRepository(client, tasksTable),
	}
}

func (m *DynamoRepositoryManager) Expedientes() expedientes.Repository { return m.expedientes }
func (m *DynamoRepositoryManager) Tasks() tasks.Repository             { return m.tasks }
func (m *DynamoRepositoryManager) Close() error                        { return nil }
