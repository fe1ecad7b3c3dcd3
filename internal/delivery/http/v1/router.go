package v1

import (
	"net/http"
	"time"

	"go-talent-session/config"
	"go-talent-session/internal/bus"
	"go-talent-session/internal/delivery/http/middleware"
	"go-talent-session/internal/delivery/http/response"
	"go-talent-session/internal/delivery/ws"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Registry *usecase.SessionRegistry
	Events   *bus.Bus
	HealthUC usecase.HealthUsecase
	Redis    *goredis.Client // nil selects the in-memory rate limiter
	JWKS     *auth.Provider  // optional RS256 verification of session tokens
	Config   *config.Config
	Logger   *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	global := middleware.DefaultRateLimitConfig()
	global.Redis = deps.Redis
	r.Use(middleware.RateLimitMiddleware(global))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Success(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})
	v1.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	session := middleware.SessionRateLimitConfig(deps.Config.RateLimitThreshold, time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second)
	session.Redis = deps.Redis

	upgrader := ws.NewUpgrader(middleware.AllowedOrigins(deps.Config.FrontendURL))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.JWKS))
	protected.Use(middleware.RateLimitMiddleware(session))
	{
		NewRelationshipHandler(protected, deps.Registry)
		NewJobHandler(protected, deps.Registry)
		NewNotificationHandler(protected, deps.Registry, deps.Events, upgrader, deps.Logger)
		NewSessionHandler(protected, deps.Registry)
	}

	return r
}
