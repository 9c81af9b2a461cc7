package api

import (
	"context"
	"net/http"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// ListBudgets returns all budgets with current spend.
func ListBudgets(ctx context.Context, d Doer) (*types.BudgetList, error) {
	return call[types.BudgetList](ctx, d, "/api/budgets", request.Options{})
}

// CreateBudget adds a budget.
func CreateBudget(ctx context.Context, d Doer, in types.BudgetInput) (*types.Budget, error) {
	return call[types.Budget](ctx, d, "/api/budgets", request.Options{Method: http.MethodPost, Data: in})
}

// UpdateBudget replaces a budget.
func UpdateBudget(ctx context.Context, d Doer, id string, in types.BudgetInput) (*types.Budget, error) {
	return call[types.Budget](ctx, d, "/api/budgets/"+segment(id), request.Options{Method: http.MethodPut, Data: in})
}

// DeleteBudget removes a budget.
func DeleteBudget(ctx context.Context, d Doer, id string) error {
	_, err := d.Do(ctx, "/api/budgets/"+segment(id), request.Options{Method: http.MethodDelete})
	return err
}
