package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"
	"go-talent-session/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "https://cdn.example.com/", 2*time.Second, logger.NewTest(t))
	return c.ForSession(domain.Session{UserID: "me", Token: "tok"})
}

func TestUnwrapForms(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		page, err := decodePage[domain.UserSummary](mustUnwrap(t, `[{"_id":"a"},{"_id":"b"}]`))
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("success envelope with array", func(t *testing.T) {
		page, err := decodePage[domain.UserSummary](mustUnwrap(t, `{"success":true,"data":[{"_id":"a"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "a", page.Items[0].ID)
	})

	t.Run("success envelope with items and total", func(t *testing.T) {
		page, err := decodePage[domain.UserSummary](mustUnwrap(t, `{"success":true,"data":{"items":[{"_id":"a"}],"total":40}}`))
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 40, page.Total)
	})

	t.Run("null data is an empty page", func(t *testing.T) {
		page, err := decodePage[domain.UserSummary](mustUnwrap(t, `{"success":true,"data":null}`))
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("flat envelope keeps its fields", func(t *testing.T) {
		var out struct {
			Updated int `json:"updated"`
		}
		require.NoError(t, json.Unmarshal(mustUnwrap(t, `{"success":true,"updated":3}`), &out))
		assert.Equal(t, 3, out.Updated)
	})

	t.Run("success false is an error", func(t *testing.T) {
		_, err := unwrap([]byte(`{"success":false,"message":"nope"}`))
		require.Error(t, err)
		assert.Equal(t, "nope", err.Error())
	})
}

func mustUnwrap(t *testing.T, body string) []byte {
	t.Helper()
	out, err := unwrap([]byte(body))
	require.NoError(t, err)
	return out
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   apperror.Kind
	}{
		{http.StatusUnauthorized, apperror.KindUnauthorized},
		{http.StatusForbidden, apperror.KindUnauthorized},
		{http.StatusNotFound, apperror.KindNotFound},
		{http.StatusConflict, apperror.KindInvalidTransition},
		{http.StatusBadRequest, apperror.KindValidation},
		{http.StatusUnprocessableEntity, apperror.KindValidation},
		{http.StatusInternalServerError, apperror.KindNetwork},
		{http.StatusBadGateway, apperror.KindNetwork},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"success":false,"message":"backend says no"}`))
			})
			err := NewNotificationRepository(c).MarkRead(context.Background(), "n1")
			assert.Equal(t, tt.want, apperror.KindOf(err))
		})
	}
}

func TestTransportFailureIsNetwork(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", 200*time.Millisecond, logger.NewTest(t))
	_, err := NewNotificationRepository(c).List(context.Background())
	assert.True(t, apperror.IsKind(err, apperror.KindNetwork))
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-1")

	require.NoError(t, NewConnectionRepository(c).SendRequest(ctx, "u2"))
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "req-1", got.Get("X-Request-ID"))
}

func TestConnectionRepository(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/connections/requests":
			_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"r1","sender":{"_id":"u2","firstName":"Bo","image":"avatars/bo.png"},"recipient":"me","status":"pending"}]}`))
		case "/connections":
			_, _ = w.Write([]byte(`[{"_id":"u3","firstName":"Cy"},{"user":{"_id":"u4"},"connectedAt":"2026-10-01T00:00:00Z"}]`))
		case "/users/suggestions":
			_, _ = w.Write([]byte(`{"success":true,"data":{"items":[{"_id":"u5","image":"https://img.example.com/u5.png"}],"total":1}}`))
		case "/connections/accept/r1":
			assert.Equal(t, http.MethodPut, r.Method)
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewConnectionRepository(c)
	ctx := context.Background()

	pending, err := repo.ListPendingIncoming(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "u2", pending[0].Requester.ID)
	assert.Equal(t, "https://cdn.example.com/avatars/bo.png", *pending[0].Requester.Image)

	conns, err := repo.ListConnections(ctx)
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, "u3", conns[0].User.ID)
	assert.Equal(t, "u4", conns[1].User.ID)
	assert.False(t, conns[1].ConnectedAt.IsZero())

	suggestions, err := repo.ListSuggestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/u5.png", *suggestions[0].Image)

	require.NoError(t, repo.Accept(ctx, "r1"))
	assert.True(t, apperror.IsKind(repo.Reject(ctx, "missing"), apperror.KindNotFound))
}

func TestJobRepositoryApplicants(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/jobs/j1/applicants":
			_, _ = w.Write([]byte(`{"success":true,"data":[
				{"userId":"u1","resumeUrl":"files/u1.pdf","score":88,"status":"pending"},
				{"userId":{"_id":"u2","firstName":"Di"},"resumeUrl":"https://files.example.com/u2.pdf","additionalAttachment":"files/u2-extra.pdf"}
			]}`))
		case "/jobs/j1/rescore":
			_, _ = w.Write([]byte(`{"success":true,"data":{"updated":2}}`))
		case "/jobs/j1/top-candidates":
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"userId":"u1","score":90}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewJobRepository(c)
	ctx := context.Background()

	applicants, err := repo.ListApplicants(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, applicants, 2)

	assert.Equal(t, "u1", applicants[0].UserID)
	assert.Equal(t, "https://cdn.example.com/files/u1.pdf", applicants[0].ResumeURL)
	assert.Equal(t, 88, applicants[0].DisplayScore())

	assert.Equal(t, "u2", applicants[1].UserID)
	require.NotNil(t, applicants[1].User)
	assert.Equal(t, "Di", applicants[1].User.FirstName)
	assert.Nil(t, applicants[1].Score)
	assert.Equal(t, domain.ApplicantStatusPending, applicants[1].Status)
	assert.Equal(t, "https://cdn.example.com/files/u2-extra.pdf", *applicants[1].Attachment)

	updated, err := repo.Rescore(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	top, err := repo.TopCandidates(ctx, "j1", 2)
	require.NoError(t, err)
	assert.Equal(t, 90, top[0].DisplayScore())
}

func TestJobRepositoryRescoreFlatEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Rescored","updated":3}`))
	})
	updated, err := NewJobRepository(c).Rescore(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, 3, updated)
}

func TestNotificationRepositoryList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"_id":"n1","type":"job_application","sender":{"type":"User","id":"u1"},"entity":{"type":"JobOffer","id":"j1"},"isRead":false,"createdAt":"2026-10-10T00:00:00Z"}
		]}`))
	})
	list, err := NewNotificationRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	id, ok := list[0].Entity.Unresolved()
	assert.True(t, ok)
	assert.Equal(t, "j1", id)
}

func TestMediaResolver(t *testing.T) {
	m := NewMediaResolver("https://cdn.example.com/")
	assert.Equal(t, "", m.Resolve(""))
	assert.Equal(t, "https://cdn.example.com/a/b.png", m.Resolve("/a/b.png"))
	assert.Equal(t, "http://other/x.png", m.Resolve("http://other/x.png"))
	assert.Equal(t, "data:image/png;base64,AA", m.Resolve("data:image/png;base64,AA"))
	assert.Nil(t, m.resolvePtr(nil))
}
