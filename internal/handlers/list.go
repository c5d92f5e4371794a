package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"newsitems-api/internal/metrics"
	"newsitems-api/internal/models"
)

// ListHandler returns all stored news items
type ListHandler struct {
	store NewsItemScanner
}

// NewListHandler creates a ListHandler reading from store
func NewListHandler(store NewsItemScanner) *ListHandler {
	return &ListHandler{store: store}
}

// Handle scans the store and returns {"data": [...]} with status 200
func (h *ListHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.store.ScanNewsItems(ctx)
	if err != nil {
		metrics.Listings.WithLabelValues(metrics.OutcomeError).Inc()
		return events.APIGatewayProxyResponse{}, err
	}

	requestLog(ctx, request).WithField("count", len(items)).
		Infof("Displaying %d newsitems", len(items))
	metrics.Listings.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.ListedItems.Observe(float64(len(items)))

	body, err := json.Marshal(models.NewNewsItemList(items))
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to marshal news items: %w", err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
