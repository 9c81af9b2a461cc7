package api

import (
	"context"
	"net/http"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// Login authenticates with username and password.
func Login(ctx context.Context, d Doer, req types.LoginRequest) (*types.LoginResponse, error) {
	// A bad password answers 401; there is nothing to retry.
	return call[types.LoginResponse](ctx, d, "/api/auth/login", request.Options{
		Method:  http.MethodPost,
		Data:    req,
		Retries: request.NoRetry,
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func RefreshToken(ctx context.Context, d Doer, refreshToken string) (*types.RefreshResponse, error) {
	return call[types.RefreshResponse](ctx, d, "/api/auth/refresh", request.Options{
		Method: http.MethodPost,
		Data:   types.RefreshTokenRequest{RefreshToken: refreshToken},
	})
}

// Logout invalidates the current session on the backend.
func Logout(ctx context.Context, d Doer) error {
	_, err := d.Do(ctx, "/api/auth/logout", request.Options{Method: http.MethodPost, Retries: request.NoRetry})
	return err
}

// CurrentUser returns the authenticated user.
func CurrentUser(ctx context.Context, d Doer) (*types.UserInfo, error) {
	return call[types.UserInfo](ctx, d, "/api/auth/me", request.Options{})
}

// VerifyToken checks the current token with the backend.
func VerifyToken(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/auth/verify", request.Options{})
}

// AuthPermissions lists the permissions granted to the current user.
func AuthPermissions(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/auth/permissions", request.Options{})
}

// ChangePassword updates the current user's password.
func ChangePassword(ctx context.Context, d Doer, req types.ChangePasswordRequest) (*types.Message, error) {
	return call[types.Message](ctx, d, "/api/auth/change-password", request.Options{
		Method:  http.MethodPost,
		Data:    req,
		Retries: request.NoRetry,
	})
}

// AuthAuditLog returns recent authentication events.
func AuthAuditLog(ctx context.Context, d Doer) (*types.Object, error) {
	return call[types.Object](ctx, d, "/api/auth/audit-log", request.Options{})
}
