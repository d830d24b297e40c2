package tasks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
)

func ToItem(t *models.Task) dynamo.Item {
	return dynamo.Item{
		"id":         dynamo.S(t.ID),
		"titulo":     dynamo.S(t.Titulo),
		"completada": dynamo.BOOL(t.Completada),
	}
}

func FromItem(item dynamo.Item) *models.Task {
	return &models.Task{
		ID:         dynamo.StringAttr(item, "id"),
		Titulo:     dynamo.StringAttr(item, "titulo"),
		Completada: dynamo.BoolAttr(item, "completada"),
	}
}

type DynamoRepository struct {
	client dynamo.API
	table  string
}

func NewDynamoRepository(client dynamo.API, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) ScanAll(ctx context.Context) ([]*models.Task, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, common.NewStorageError("scan", err)
	}

	result := make([]*models.Task, 0, len(out.Items))
	for _, item := range out.Items {
		result = append(result, FromItem(item))
	}
	return result, nil
}

func (r *DynamoRepository) Put(ctx context.Context, t *models.Task) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      ToItem(t),
	})
	if err != nil {
		return common.NewStorageError("put", err)
	}
	return nil
}
