package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"newsitems-api/internal/models"
)

// DynamoDBAPI is the subset of the DynamoDB client used by NewsItemStore
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// NewsItemStore reads and writes news items in a DynamoDB table
type NewsItemStore struct {
	client    DynamoDBAPI
	tableName string
}

// NewNewsItemStore creates a store bound to the given table
func NewNewsItemStore(client DynamoDBAPI, tableName string) *NewsItemStore {
	return &NewsItemStore{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the table the store is bound to
func (s *NewsItemStore) TableName() string {
	return s.tableName
}

// CreateNewsItem stores a news item as-is
func (s *NewsItemStore) CreateNewsItem(ctx context.Context, item *models.NewsItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal news item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to create news item: %w", err)
	}

	return nil
}

// ScanNewsItems returns every item in the table in store order.
// All scan pages are read; the result is never nil.
func (s *NewsItemStore) ScanNewsItems(ctx context.Context) ([]models.NewsItem, error) {
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})

	items := []models.NewsItem{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news items: %w", err)
		}

		var batch []models.NewsItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal news items: %w", err)
		}
		items = append(items, batch...)
	}

	return items, nil
}

// Ping scans a single item to confirm the table is reachable
func (s *NewsItemStore) Ping(ctx context.Context) (int, error) {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan table %s: %w", s.tableName, err)
	}
	return len(result.Items), nil
}
