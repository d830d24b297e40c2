// Package repomanager vends the repositories of the configured storage
// backend: DynamoDB, PostgreSQL or process memory.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expedientes/internal/server/config"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/expedientes"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
)

type RepositoryManager interface {
	Expedientes() expedientes.Repository
	Tasks() tasks.Repository
	Close() error
}

// New builds the manager selected by cfg.Storage.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageDynamoDB:
		client, err := dynamo.NewClient(ctx, dynamo.Options{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamodb client: %w", err)
		}
		return NewDynamoRepositoryManager(client, cfg.TableName, cfg.TasksTableName), nil
	case config.StoragePostgres:
		return OpenPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
