package api

import (
	"context"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// ListAccounts returns all accounts with their balances.
func ListAccounts(ctx context.Context, d Doer) (*types.AccountList, error) {
	return call[types.AccountList](ctx, d, "/api/accounts", request.Options{})
}

// GetAccountBalance returns the balance history of one account.
func GetAccountBalance(ctx context.Context, d Doer, accountID string) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/accounts/"+segment(accountID)+"/balance", request.Options{})
}

// GetNetWorth returns assets minus liabilities.
func GetNetWorth(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/net-worth", request.Options{})
}
