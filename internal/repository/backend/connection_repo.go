package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go-talent-session/internal/domain"
)

type connectionRepo struct {
	c *Client
}

func NewConnectionRepository(c *Client) domain.ConnectionGateway {
	return &connectionRepo{c: c}
}

func (r *connectionRepo) SendRequest(ctx context.Context, targetUserID string) error {
	return r.c.do(ctx, "connection.send", http.MethodPost, "/connections/request/"+url.PathEscape(targetUserID), nil, nil)
}

func (r *connectionRepo) ListPendingIncoming(ctx context.Context) ([]domain.ConnectionRequest, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "connection.pending", http.MethodGet, "/connections/requests", nil, &raw); err != nil {
		return nil, err
	}
	page, err := decodePage[domain.ConnectionRequest](raw)
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		r.resolveUser(&page.Items[i].Requester)
	}
	return page.Items, nil
}

// wireConnection accepts both a bare user card and {user, connectedAt}.
type wireConnection struct {
	domain.UserSummary
	User        *domain.UserSummary `json:"user"`
	ConnectedAt time.Time           `json:"connectedAt"`
}

func (r *connectionRepo) ListConnections(ctx context.Context) ([]domain.Connection, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "connection.list", http.MethodGet, "/connections", nil, &raw); err != nil {
		return nil, err
	}
	page, err := decodePage[wireConnection](raw)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Connection, 0, len(page.Items))
	for _, w := range page.Items {
		user := w.UserSummary
		if w.User != nil {
			user = *w.User
		}
		if user.ID == "" {
			continue
		}
		r.resolveUser(&user)
		out = append(out, domain.Connection{User: user, ConnectedAt: w.ConnectedAt})
	}
	return out, nil
}

func (r *connectionRepo) ListSuggestions(ctx context.Context) ([]domain.UserSummary, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "connection.suggestions", http.MethodGet, "/users/suggestions", nil, &raw); err != nil {
		return nil, err
	}
	page, err := decodePage[domain.UserSummary](raw)
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		r.resolveUser(&page.Items[i])
	}
	return page.Items, nil
}

func (r *connectionRepo) Accept(ctx context.Context, requestID string) error {
	return r.c.do(ctx, "connection.accept", http.MethodPut, "/connections/accept/"+url.PathEscape(requestID), nil, nil)
}

func (r *connectionRepo) Reject(ctx context.Context, requestID string) error {
	return r.c.do(ctx, "connection.reject", http.MethodPut, "/connections/reject/"+url.PathEscape(requestID), nil, nil)
}

func (r *connectionRepo) Remove(ctx context.Context, userID string) error {
	return r.c.do(ctx, "connection.remove", http.MethodDelete, "/connections/"+url.PathEscape(userID), nil, nil)
}

func (r *connectionRepo) resolveUser(u *domain.UserSummary) {
	u.Image = r.c.media.resolvePtr(u.Image)
}
