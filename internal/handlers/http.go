package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"newsitems-api/internal/logger"
)

// RequestIDHeader carries the per-request id on the local API
const RequestIDHeader = "X-Request-ID"

// ProxyHandlerFunc is the signature shared by the API Gateway proxy handlers
type ProxyHandlerFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHTTPHandler serves the proxy handlers over plain HTTP for local runs.
// POST and GET /newsitems map to submit and list.
func NewHTTPHandler(submit, list ProxyHandlerFunc) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /newsitems", adaptProxy(submit))
	mux.Handle("GET /newsitems", adaptProxy(list))
	return requestIDMiddleware(loggingMiddleware(mux))
}

func adaptProxy(fn ProxyHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := fn(r.Context(), toProxyRequest(r))
		if err != nil {
			logger.Log.WithError(err).WithField("request_id", r.Header.Get(RequestIDHeader)).
				Error("Unhandled handler error")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

func toProxyRequest(r *http.Request) events.APIGatewayProxyRequest {
	var params map[string]string
	if query := r.URL.Query(); len(query) > 0 {
		params = make(map[string]string, len(query))
		for k, v := range query {
			params[k] = v[0]
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: params,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  r.Header.Get(RequestIDHeader),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		},
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		logger.Log.WithFields(logger.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rw.statusCode,
			"duration":   time.Since(start),
			"request_id": r.Header.Get(RequestIDHeader),
		}).Debug("Request completed")
	})
}
