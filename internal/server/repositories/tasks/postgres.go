package tasks

import (
	"context"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/dbx"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ScanAll(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, titulo, completada FROM tasks`)
	if err != nil {
		return nil, common.NewStorageError("scan", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Completada); err != nil {
			return nil, common.NewStorageError("scan", err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("scan", err)
	}
	return result, nil
}

func (r *PostgresRepository) Put(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (id, titulo, completada)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET titulo = EXCLUDED.titulo, completada = EXCLUDED.completada;
	`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Titulo, t.Completada); err != nil {
		return common.NewStorageError("put", err)
	}
	return nil
}
