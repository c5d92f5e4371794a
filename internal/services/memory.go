package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const memoryScanCursorKey = "_offset"

// MemoryDynamoDB is an in-process DynamoDBAPI backed by a slice.
// It is used by the local API when no AWS table is configured, and by tests.
type MemoryDynamoDB struct {
	mu       sync.Mutex
	tables   map[string][]map[string]types.AttributeValue
	pageSize int
}

// NewMemoryDynamoDB creates an empty in-memory store. A pageSize above zero
// splits scans into pages of that size.
func NewMemoryDynamoDB(pageSize int) *MemoryDynamoDB {
	return &MemoryDynamoDB{
		tables:   make(map[string][]map[string]types.AttributeValue),
		pageSize: pageSize,
	}
}

// PutItem appends the item to the named table
func (m *MemoryDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := aws.ToString(params.TableName)
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = append(m.tables[table], params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

// Scan returns a page of items from the named table
func (m *MemoryDynamoDB) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := aws.ToString(params.TableName)

	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.tables[table]

	start := 0
	if cursor, ok := params.ExclusiveStartKey[memoryScanCursorKey].(*types.AttributeValueMemberN); ok {
		n, err := strconv.Atoi(cursor.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid scan cursor: %w", err)
		}
		start = n
	}
	if start > len(all) {
		start = len(all)
	}

	limit := len(all) - start
	if m.pageSize > 0 && m.pageSize < limit {
		limit = m.pageSize
	}
	if params.Limit != nil && int(*params.Limit) < limit {
		limit = int(*params.Limit)
	}

	end := start + limit
	out := &dynamodb.ScanOutput{
		Items: append([]map[string]types.AttributeValue(nil), all[start:end]...),
		Count: int32(limit),
	}
	if end < len(all) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			memoryScanCursorKey: &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

// Len reports how many items the named table holds
func (m *MemoryDynamoDB) Len(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables[table])
}
