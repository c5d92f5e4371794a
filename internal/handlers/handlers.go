// Package handlers implements the news item API Gateway proxy handlers.
//
// Each handler performs a single store operation per invocation. Validation
// failures become 400 responses; store failures are returned as errors so the
// Lambda runtime reports them as a failed invocation.
package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"newsitems-api/internal/logger"
	"newsitems-api/internal/models"
)

// NewsItemCreator persists a submitted news item
type NewsItemCreator interface {
	CreateNewsItem(ctx context.Context, item *models.NewsItem) error
}

// NewsItemScanner returns every stored news item
type NewsItemScanner interface {
	ScanNewsItems(ctx context.Context) ([]models.NewsItem, error)
}

// requestLog returns a log entry tagged with the invocation's request id
func requestLog(ctx context.Context, request events.APIGatewayProxyRequest) *logrus.Entry {
	entry := logrus.NewEntry(logger.Log)

	requestID := request.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		requestID = lc.AwsRequestID
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}
