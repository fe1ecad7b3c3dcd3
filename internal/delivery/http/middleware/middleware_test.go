package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-talent-session/config"
	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func unsigned(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return tok
}

func authEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(cfg, nil))
	r.GET("/me", func(c *gin.Context) {
		s, ok := SessionFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": s.UserID, "token": s.Token})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	newEngine := func(secret string) *gin.Engine {
		return authEngine(t, &config.Config{SessionJWTSecret: secret})
	}

	t.Run("Should reject missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newEngine("s3cret").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should accept a valid HS256 token", func(t *testing.T) {
		tok := signed(t, "s3cret", jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		newEngine("s3cret").ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user":"u1"`)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		tok := signed(t, "other", jwt.MapClaims{"sub": "u1"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		newEngine("s3cret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an unsigned token", func(t *testing.T) {
		tok := unsigned(t, jwt.MapClaims{"sub": "admin"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		newEngine("s3cret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject every token when no key is configured", func(t *testing.T) {
		for _, tok := range []string{
			unsigned(t, jwt.MapClaims{"sub": "admin"}),
			signed(t, "anything", jwt.MapClaims{"userId": "u9"}),
		} {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			w := httptest.NewRecorder()
			newEngine("").ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("Should decode userId claim from cookie when unverified tokens are allowed", func(t *testing.T) {
		tok := signed(t, "backend-only", jwt.MapClaims{"userId": "u9"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
		w := httptest.NewRecorder()
		authEngine(t, &config.Config{SessionAllowUnverified: true}).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user":"u9"`)
	})

	t.Run("Should reject token without subject", func(t *testing.T) {
		tok := signed(t, "s3cret", jwt.MapClaims{"role": "x"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		newEngine("s3cret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Notification not found")) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	t.Run("Should render AppError with kind", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "Notification not found", body.Message)
		assert.Equal(t, "abc", body.RequestID)
		assert.Equal(t, map[string]any{"kind": "not_found"}, body.Error)
	})

	t.Run("Should hide internal errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestRequestIDReachesContext(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Context().Value(domain.KeyRequestID).(string))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-7", w.Body.String())
}

func TestRateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := SessionRateLimitConfig(2, time.Minute)
	cfg.KeyPrefix = "rl:test:"
	cfg.Redis = client

	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.True(t, mr.Exists("rl:test:192.0.2.1"))
}

func TestRateLimitFallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	cfg := SessionRateLimitConfig(1, time.Minute)
	cfg.KeyPrefix = "rl:fallback:"
	cfg.Redis = client

	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://app.example.com"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
