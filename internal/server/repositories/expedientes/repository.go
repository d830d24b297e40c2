// Package expedientes stores case files in a single table keyed by id.
// Implementations are pure mapping layers: validation lives in services.
package expedientes

import (
	"context"

	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

// Repository is the record store contract.
//
// ScanAll returns every record in no particular order. GetByID returns
// common.ErrorNotFound for an unknown id. Put is an unconditional upsert and
// DeleteByID an unconditional delete. Backend failures surface as
// *common.StorageError and are never retried.
type Repository interface {
	ScanAll(ctx context.Context) ([]*models.Expediente, error)
	GetByID(ctx context.Context, id string) (*models.Expediente, error)
	Put(ctx context.Context, e *models.Expediente) error
	DeleteByID(ctx context.Context, id string) error
}
