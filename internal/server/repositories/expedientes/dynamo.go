package expedientes

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/models"
	"github.com/dmitrijs2005/expedientes/internal/server/shared/dynamo"
)

// DynamoRepository implements Repository over one DynamoDB table.
type DynamoRepository struct {
	client dynamo.API
	table  string
}

func NewDynamoRepository(client dynamo.API, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

// ScanAll issues a single Scan. Results beyond the backend's page limit are
// not fetched.
func (r *DynamoRepository) ScanAll(ctx context.Context) ([]*models.Expediente, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, common.NewStorageError("scan", err)
	}

	result := make([]*models.Expediente, 0, len(out.Items))
	for _, item := range out.Items {
		result = append(result, FromItem(item))
	}
	return result, nil
}

func (r *DynamoRepository) GetByID(ctx context.Context, id string) (*models.Expediente, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       dynamo.Key(id),
	})
	if err != nil {
		return nil, common.NewStorageError("get", err)
	}
	if out.Item == nil {
		return nil, common.ErrorNotFound
	}
	return FromItem(out.Item), nil
}

func (r *DynamoRepository) Put(ctx context.Context, e *models.Expediente) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      ToItem(e),
	})
	if err != nil {
		return common.NewStorageError("put", err)
	}
	return nil
}

func (r *DynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       dynamo.Key(id),
	})
	if err != nil {
		return common.NewStorageError("delete", err)
	}
	return nil
}
