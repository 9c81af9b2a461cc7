package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// ListTransactions returns a filtered page of transactions.
func ListTransactions(ctx context.Context, d Doer, f types.TransactionFilter) (*types.TransactionList, error) {
	q := url.Values{}
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	setString(q, "category", f.Category)
	setString(q, "start_date", f.StartDate)
	setString(q, "end_date", f.EndDate)
	return call[types.TransactionList](ctx, d, withQuery("/api/transactions", q), request.Options{})
}

// RecentTransactions returns the latest transactions.
func RecentTransactions(ctx context.Context, d Doer, limit int) (*types.TransactionList, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	return call[types.TransactionList](ctx, d, withQuery("/api/transactions/recent", q), request.Options{})
}

// GetTransaction returns a single transaction.
func GetTransaction(ctx context.Context, d Doer, id string) (*types.Transaction, error) {
	return call[types.Transaction](ctx, d, "/api/transactions/"+segment(id), request.Options{})
}

// CreateTransaction records a new transaction.
func CreateTransaction(ctx context.Context, d Doer, in types.TransactionInput) (*types.Transaction, error) {
	return call[types.Transaction](ctx, d, "/api/transactions", request.Options{Method: http.MethodPost, Data: in})
}

// UpdateTransaction replaces a transaction.
func UpdateTransaction(ctx context.Context, d Doer, id string, in types.TransactionInput) (*types.Transaction, error) {
	return call[types.Transaction](ctx, d, "/api/transactions/"+segment(id), request.Options{Method: http.MethodPut, Data: in})
}

// DeleteTransaction removes a transaction.
func DeleteTransaction(ctx context.Context, d Doer, id string) error {
	_, err := d.Do(ctx, "/api/transactions/"+segment(id), request.Options{Method: http.MethodDelete})
	return err
}
