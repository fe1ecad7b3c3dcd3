package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"
	"go-talent-session/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// Client talks to the platform backend on behalf of one session. The zero
// token is valid for construction; ForSession binds a session's credentials.
type Client struct {
	baseURL    string
	media      MediaResolver
	httpClient *http.Client
	token      string
	logger     *zap.Logger
}

func NewClient(baseURL, mediaBaseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		media:   NewMediaResolver(mediaBaseURL),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ForSession returns a copy of c authenticated as s.
func (c *Client) ForSession(s domain.Session) *Client {
	cp := *c
	cp.token = s.Token
	cp.logger = c.logger.With(zap.String("user_id", s.UserID))
	return &cp
}

// Media exposes the resolver used for image and file references.
func (c *Client) Media() MediaResolver {
	return c.media
}

// do sends one request and, when out is non-nil, decodes the unwrapped
// payload into it. HTTP error statuses are mapped by statusError.
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	start := time.Now()
	err := c.send(ctx, method, path, body, out)

	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = string(apperror.KindOf(err))
		c.logger.Warn("backend request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
	}
	metrics.BackendRequests.WithLabelValues(op, outcome).Inc()
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Internal(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.Internal(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.Network(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, raw)
	}
	payload, err := unwrap(raw)
	if err != nil {
		return err
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperror.Network(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// statusError maps a backend HTTP status onto the error taxonomy.
func statusError(code int, body []byte) error {
	msg := messageOf(body)
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperror.New(http.StatusUnauthorized, apperror.KindUnauthorized, orDefault(msg, "Session is not authorized"), nil)
	case code == http.StatusNotFound:
		return apperror.NotFound(orDefault(msg, "Resource not found"))
	case code == http.StatusConflict:
		return apperror.InvalidTransition(orDefault(msg, "Resource is not in an eligible state"))
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return apperror.Validation(orDefault(msg, "Request was rejected by the backend"), nil)
	default:
		return apperror.Network(fmt.Errorf("backend returned %d: %s", code, orDefault(msg, http.StatusText(code))))
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(domain.KeyRequestID).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
