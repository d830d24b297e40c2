// Package tasks stores to-do list entries in a key-value table.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

type Repository interface {
	ScanAll(ctx context.Context) ([]*models.Task, error)
	Put(ctx context.Context, t *models.Task) error
}
