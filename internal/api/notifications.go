package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// ListNotifications returns notifications, optionally only the unread ones.
func ListNotifications(ctx context.Context, d Doer, unreadOnly bool) (*types.NotificationList, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread_only", "true")
	}
	return call[types.NotificationList](ctx, d, withQuery("/api/notifications", q), request.Options{})
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(ctx context.Context, d Doer, id string) error {
	_, err := d.Do(ctx, "/api/notifications/"+segment(id)+"/read", request.Options{Method: http.MethodPut})
	return err
}

// MarkAllNotificationsRead flags every notification as read.
func MarkAllNotificationsRead(ctx context.Context, d Doer) error {
	_, err := d.Do(ctx, "/api/notifications/read-all", request.Options{Method: http.MethodPut})
	return err
}
