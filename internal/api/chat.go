package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// chatTimeout allows for model latency on the backend.
const chatTimeout = 30 * time.Second

// SendChatMessage asks the assistant a question.
func SendChatMessage(ctx context.Context, d Doer, req types.ChatRequest) (*types.ChatResponse, error) {
	return call[types.ChatResponse](ctx, d, "/api/chat", request.Options{
		Method:  http.MethodPost,
		Data:    req,
		Timeout: chatTimeout,
	})
}

// GetChatHistory returns previous exchanges, newest last.
func GetChatHistory(ctx context.Context, d Doer, limit int) (*types.ChatHistory, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	return call[types.ChatHistory](ctx, d, withQuery("/api/chat/history", q), request.Options{})
}

// ClearChatHistory deletes the stored history.
func ClearChatHistory(ctx context.Context, d Doer) error {
	_, err := d.Do(ctx, "/api/chat/history", request.Options{Method: http.MethodDelete})
	return err
}
