package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"newsitems-api/internal/logger"
	"newsitems-api/internal/metrics"
	"newsitems-api/internal/models"
)

// SubmitHandler stores news items passed as query string parameters
type SubmitHandler struct {
	store NewsItemCreator
}

// NewSubmitHandler creates a SubmitHandler writing to store
func NewSubmitHandler(store NewsItemCreator) *SubmitHandler {
	return &SubmitHandler{store: store}
}

// Handle validates title, description and date and stores the item.
// A missing parameter is treated the same as an empty one.
func (h *SubmitHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := requestLog(ctx, request)
	item := models.NewsItemFromQuery(request.QueryStringParameters)

	if err := item.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			log.WithField("field", verr.Field).Info(verr.Message)
			metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Body:       verr.Message,
			}, nil
		}
		return events.APIGatewayProxyResponse{}, err
	}

	if err := h.store.CreateNewsItem(ctx, item); err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeError).Inc()
		return events.APIGatewayProxyResponse{}, err
	}

	log.WithFields(logger.Fields{
		"title":       item.Title,
		"description": item.Description,
		"date":        item.Date,
	}).Info("New newsitem added")
	metrics.Submissions.WithLabelValues(metrics.OutcomeCreated).Inc()

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusCreated,
	}, nil
}
