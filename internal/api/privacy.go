package api

import (
	"context"
	"net/http"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// GetPrivacySettings returns the data-sharing permissions.
func GetPrivacySettings(ctx context.Context, d Doer) (*types.PrivacySettings, error) {
	return call[types.PrivacySettings](ctx, d, "/api/privacy/settings", request.Options{})
}

// UpdatePrivacySettings replaces the data-sharing permissions.
func UpdatePrivacySettings(ctx context.Context, d Doer, p types.Permissions) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/privacy/settings", request.Options{Method: http.MethodPut, Data: p})
}

// GetPrivacyCategories lists the data categories that can be shared.
func GetPrivacyCategories(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/privacy/categories", request.Options{})
}

// DeletePrivacyData purges the given categories. Not retried.
func DeletePrivacyData(ctx context.Context, d Doer, req types.PrivacyDeleteRequest) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/privacy/delete", request.Options{
		Method:  http.MethodPost,
		Data:    req,
		Retries: request.NoRetry,
	})
}

// GetPrivacyAudit returns the data access audit trail.
func GetPrivacyAudit(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/privacy/audit", request.Options{})
}
