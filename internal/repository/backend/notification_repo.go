package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go-talent-session/internal/domain"
)

type notificationRepo struct {
	c *Client
}

func NewNotificationRepository(c *Client) domain.NotificationGateway {
	return &notificationRepo{c: c}
}

func (r *notificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "notification.list", http.MethodGet, "/notifications", nil, &raw); err != nil {
		return nil, err
	}
	page, err := decodePage[domain.Notification](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.c.do(ctx, "notification.read", http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (r *notificationRepo) MarkAllRead(ctx context.Context) error {
	return r.c.do(ctx, "notification.read_all", http.MethodPut, "/notifications/read-all", nil, nil)
}

func (r *notificationRepo) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, "notification.delete", http.MethodDelete, "/notifications/"+url.PathEscape(id), nil, nil)
}
