package expedientes

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/dbx"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
)

// PostgresRepository implements Repository over the expedientes table,
// using a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ScanAll(ctx context.Context) ([]*models.Expediente, error) {
	query := `SELECT id, nombre, descripcion, estado, created_at, updated_at FROM expedientes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStorageError("scan", err)
	}
	defer rows.Close()

	result := make([]*models.Expediente, 0)
	for rows.Next() {
		e, err := scanExpediente(rows)
		if err != nil {
			return nil, common.NewStorageError("scan", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("scan", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Expediente, error) {
	query := `SELECT id, nombre, descripcion, estado, created_at, updated_at FROM expedientes
		WHERE id = $1`

	e, err := scanExpediente(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, common.NewStorageError("get", err)
	}
	return e, nil
}

func (r *PostgresRepository) Put(ctx context.Context, e *models.Expediente) error {
	query := `
		INSERT INTO expedientes (id, nombre, descripcion, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			nombre = EXCLUDED.nombre,
			descripcion = EXCLUDED.descripcion,
			estado = EXCLUDED.estado,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Nombre, e.Descripcion, string(e.Estado), nullable(e.CreatedAt), nullable(e.UpdatedAt))
	if err != nil {
		return common.NewStorageError("put", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expedientes WHERE id = $1`, id); err != nil {
		return common.NewStorageError("delete", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpediente(s scanner) (*models.Expediente, error) {
	var (
		e                    models.Expediente
		estado               string
		createdAt, updatedAt sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Nombre, &e.Descripcion, &estado, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Estado = models.Estado(estado)
	if e.Estado == "" {
		e.Estado = models.EstadoActivo
	}
	e.CreatedAt = createdAt.String
	e.UpdatedAt = updatedAt.String
	return &e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
