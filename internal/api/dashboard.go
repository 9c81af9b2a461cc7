package api

import (
	"context"
	"net/url"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// GetDashboard returns the headline figures for the dashboard.
func GetDashboard(ctx context.Context, d Doer) (*types.DashboardSummary, error) {
	return call[types.DashboardSummary](ctx, d, "/api/dashboard", request.Options{})
}

// GetSpendingTrend returns monthly spending for the last months (backend default when 0).
func GetSpendingTrend(ctx context.Context, d Doer, months int) (*types.Object, error) {
	q := url.Values{}
	setInt(q, "months", months)
	return call[types.Object](ctx, d, withQuery("/api/spending-trend", q), request.Options{})
}

// GetCategoryBreakdown returns spending grouped by category for a period such as "month".
func GetCategoryBreakdown(ctx context.Context, d Doer, period string) (*types.Object, error) {
	q := url.Values{}
	setString(q, "period", period)
	return call[types.Object](ctx, d, withQuery("/api/category-breakdown", q), request.Options{})
}

// GetDashboardInsights returns short AI insights shown on the dashboard.
func GetDashboardInsights(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/insights/dashboard", request.Options{})
}
