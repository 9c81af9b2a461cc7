package api

import (
	"context"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// ListInvestments returns the portfolio.
func ListInvestments(ctx context.Context, d Doer) (*types.InvestmentList, error) {
	return call[types.InvestmentList](ctx, d, "/api/investments", request.Options{})
}

// GetInvestmentPerformance returns the performance of one holding.
func GetInvestmentPerformance(ctx context.Context, d Doer, investmentID string) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/investments/"+segment(investmentID)+"/performance", request.Options{})
}

// ListAssets returns non-cash assets.
func ListAssets(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/assets", request.Options{})
}

// ListLiabilities returns debts.
func ListLiabilities(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/liabilities", request.Options{})
}
