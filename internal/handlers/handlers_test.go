package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsitems-api/internal/logger"
	"newsitems-api/internal/models"
	"newsitems-api/internal/services"
)

const testTable = "newsitems"

type brokenStore struct {
	err error
}

func (b *brokenStore) CreateNewsItem(ctx context.Context, item *models.NewsItem) error {
	return b.err
}

func (b *brokenStore) ScanNewsItems(ctx context.Context) ([]models.NewsItem, error) {
	return nil, b.err
}

func newTestStore() *services.NewsItemStore {
	return services.NewNewsItemStore(services.NewMemoryDynamoDB(0), testTable)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitWithOutput("info", "text", &buf)
	return &buf
}

func submitRequest(params map[string]string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodPost,
		Path:                  "/newsitems",
		QueryStringParameters: params,
	}
}

func decodeList(t *testing.T, body string) []models.NewsItem {
	t.Helper()
	var list models.NewsItemList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	return list.Data
}

func TestSubmitHandler_Created(t *testing.T) {
	logs := captureLogs(t)
	store := newTestStore()
	handler := NewSubmitHandler(store)

	resp, err := handler.Handle(context.Background(), submitRequest(map[string]string{
		"title":       "Launch",
		"description": "We shipped",
		"date":        "2024-05-01",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Empty(t, resp.Body)

	items, err := store.ScanNewsItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.NewsItem{Title: "Launch", Description: "We shipped", Date: "2024-05-01"}, items[0])

	out := logs.String()
	assert.Contains(t, out, "New newsitem added")
	assert.Contains(t, out, "title=Launch")
	assert.Contains(t, out, "date=2024-05-01")
	assert.Contains(t, out, "time=")
}

func TestSubmitHandler_ValidationErrors(t *testing.T) {
	valid := map[string]string{"title": "Launch", "description": "We shipped", "date": "2024-05-01"}

	tests := []struct {
		name     string
		params   map[string]string
		wantBody string
	}{
		{"empty title", withValue(valid, "title", ""), "News item must have a title!"},
		{"empty description", withValue(valid, "description", ""), "News item must have a description!"},
		{"empty date", withValue(valid, "date", ""), "News item must have a date!"},
		{"all empty", map[string]string{"title": "", "description": "", "date": ""}, "News item must have a title!"},
		{"description and date empty", map[string]string{"title": "x", "description": "", "date": ""}, "News item must have a description!"},
		{"missing date key", withoutKey(valid, "date"), "News item must have a date!"},
		{"missing description key", withoutKey(valid, "description"), "News item must have a description!"},
		{"no query string", nil, "News item must have a title!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)
			db := services.NewMemoryDynamoDB(0)
			handler := NewSubmitHandler(services.NewNewsItemStore(db, testTable))

			resp, err := handler.Handle(context.Background(), submitRequest(tt.params))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantBody, resp.Body)
			assert.Equal(t, 0, db.Len(testTable), "invalid submissions must not be stored")
		})
	}
}

func TestSubmitHandler_StoreErrorPropagates(t *testing.T) {
	captureLogs(t)
	cause := errors.New("failed to create news item: AccessDeniedException")
	handler := NewSubmitHandler(&brokenStore{err: cause})

	_, err := handler.Handle(context.Background(), submitRequest(map[string]string{
		"title": "Launch", "description": "We shipped", "date": "2024-05-01",
	}))
	assert.ErrorIs(t, err, cause)
}

func TestSubmitHandler_LogsLambdaRequestID(t *testing.T) {
	logs := captureLogs(t)
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})

	_, err := NewSubmitHandler(newTestStore()).Handle(ctx, submitRequest(map[string]string{
		"title": "Launch", "description": "We shipped", "date": "2024-05-01",
	}))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "request_id=req-123")
}

func TestListHandler_Empty(t *testing.T) {
	captureLogs(t)
	resp, err := NewListHandler(newTestStore()).Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data": []}`, resp.Body)
}

func TestListHandler_ReturnsAllItems(t *testing.T) {
	logs := captureLogs(t)
	store := services.NewNewsItemStore(services.NewMemoryDynamoDB(3), testTable)
	submit := NewSubmitHandler(store)
	ctx := context.Background()

	var want []models.NewsItem
	for i := 0; i < 7; i++ {
		item := models.NewsItem{
			Title:       fmt.Sprintf("Title %d", i),
			Description: fmt.Sprintf("Description %d", i),
			Date:        fmt.Sprintf("2024-05-%02d", i+1),
		}
		want = append(want, item)

		resp, err := submit.Handle(ctx, submitRequest(map[string]string{
			"title": item.Title, "description": item.Description, "date": item.Date,
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := NewListHandler(store).Handle(ctx, events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeList(t, resp.Body)
	assert.ElementsMatch(t, want, got)
	assert.Contains(t, logs.String(), "Displaying 7 newsitems")

	// Each object carries exactly the three fields
	var raw struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &raw))
	for _, obj := range raw.Data {
		assert.Len(t, obj, 3)
	}
}

func TestListHandler_RepeatedCallsAreIdentical(t *testing.T) {
	captureLogs(t)
	store := newTestStore()
	ctx := context.Background()
	require.NoError(t, store.CreateNewsItem(ctx, &models.NewsItem{Title: "a", Description: "b", Date: "c"}))
	require.NoError(t, store.CreateNewsItem(ctx, &models.NewsItem{Title: "d", Description: "e", Date: "f"}))

	handler := NewListHandler(store)
	first, err := handler.Handle(ctx, events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	second, err := handler.Handle(ctx, events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Len(t, decodeList(t, second.Body), 2)
}

func TestListHandler_StoreErrorPropagates(t *testing.T) {
	captureLogs(t)
	cause := errors.New("failed to scan news items: ResourceNotFoundException")

	_, err := NewListHandler(&brokenStore{err: cause}).Handle(context.Background(), events.APIGatewayProxyRequest{})
	assert.ErrorIs(t, err, cause)
}

func withValue(params map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	out[key] = value
	return out
}

func withoutKey(params map[string]string, key string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if k != key {
			out[k] = v
		}
	}
	return out
}
