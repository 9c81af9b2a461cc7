package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// GetInsights asks for insights over the permitted data.
func GetInsights(ctx context.Context, d Doer, req types.InsightsRequest) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/insights", request.Options{Method: http.MethodPost, Data: req, Timeout: chatTimeout})
}

// GenerateInsights triggers a fresh insight run.
func GenerateInsights(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/insights/generate", request.Options{Method: http.MethodPost, Timeout: chatTimeout})
}

// GetAIStatus reports whether the AI backend is available.
func GetAIStatus(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/ai/status", request.Options{})
}

// GetDataSummary returns record counts per data category.
func GetDataSummary(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/data/summary", request.Options{})
}

// Health pings the backend.
func Health(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/health", request.Options{Retries: request.NoRetry})
}

// GetSpendingAnalytics returns spending analysis for a period such as "month" or "quarter".
func GetSpendingAnalytics(ctx context.Context, d Doer, period string) (*types.Object, error) {
	q := url.Values{}
	setString(q, "period", period)
	return call[types.Object](ctx, d, withQuery("/api/analytics/spending", q), request.Options{})
}

// GetTrendAnalytics returns income/expense trends over the last months.
func GetTrendAnalytics(ctx context.Context, d Doer, months int) (*types.Object, error) {
	q := url.Values{}
	setInt(q, "months", months)
	return call[types.Object](ctx, d, withQuery("/api/analytics/trends", q), request.Options{})
}
