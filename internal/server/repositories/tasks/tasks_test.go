package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamo.API
	items []dynamo.Item
	err   error
}

func (f *fakeDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.ScanOutput{Items: f.items}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func TestItem_RoundTrip(t *testing.T) {
	for _, done := range []bool{true, false} {
		task := &models.Task{ID: "1", Titulo: "comprar pan", Completada: done}
		assert.Equal(t, task, FromItem(ToItem(task)))
	}
}

func TestToItem_CompletadaIsBool(t *testing.T) {
	item := ToItem(&models.Task{ID: "1", Titulo: "x"})
	assert.IsType(t, &types.AttributeValueMemberBOOL{}, item["completada"])
}

func TestFromItem_MissingFields(t *testing.T) {
	assert.Equal(t, &models.Task{ID: "1"}, FromItem(dynamo.Item{"id": dynamo.S("1")}))
}

func TestDynamoRepository(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	repo := NewDynamoRepository(fake, "todo")

	require.NoError(t, repo.Put(ctx, &models.Task{ID: "1", Titulo: "a"}))

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].Titulo)

	fake.err = errors.New("throttled")
	_, err = repo.ScanAll(ctx)
	assert.ErrorIs(t, err, common.ErrorStorage)
	assert.ErrorIs(t, repo.Put(ctx, &models.Task{ID: "2"}), common.ErrorStorage)
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Put(ctx, &models.Task{ID: "1", Titulo: "a"}))
	require.NoError(t, repo.Put(ctx, &models.Task{ID: "2", Titulo: "b"}))

	all, err = repo.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostgresRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`INSERT INTO tasks .* ON CONFLICT \(id\)`).
		WithArgs("1", "a", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, titulo, completada FROM tasks`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titulo", "completada"}).AddRow("1", "a", false))

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, &models.Task{ID: "1", Titulo: "a"}))

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*models.Task{{ID: "1", Titulo: "a"}}, all)
	require.NoError(t, mock.ExpectationsWereMet())
}
