package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-session/config"
	_ "go-talent-session/docs" // Important for Swagger
	"go-talent-session/internal/bus"
	v1 "go-talent-session/internal/delivery/http/v1"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/repository/backend"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/auth"
	"go-talent-session/pkg/logger"
	"go-talent-session/pkg/redis"
	"go-talent-session/pkg/validation"

	"go.uber.org/zap"
)

// @title           Talent Session API
// @version         1.0
// @description     Session-scoped relationship, applicant and notification stores in front of the platform backend.
// @host            localhost:8090
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Log.Sync() }()
	logger.Log.Info("Starting talent session service",
		zap.String("port", cfg.Port),
		zap.String("backend_url", cfg.BackendURL),
	)

	// 3. Setup Redis (optional; rate limiting falls back to memory)
	checks := map[string]usecase.HealthCheck{}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", zap.Error(err))
		} else {
			defer func() { _ = redis.Close() }()
			checks["redis"] = redis.HealthCheck
		}
	}

	// 4. Setup Backend Gateways
	client := backend.NewClient(cfg.BackendURL, cfg.MediaBaseURL, cfg.BackendTimeout, logger.Log.Named("backend"))
	factory := func(s domain.Session) usecase.Gateways {
		sc := client.ForSession(s)
		return usecase.Gateways{
			Connections:   backend.NewConnectionRepository(sc),
			Jobs:          backend.NewJobRepository(sc),
			Notifications: backend.NewNotificationRepository(sc),
		}
	}

	// 5. Setup Stores
	events := bus.New()
	registry := usecase.NewSessionRegistry(factory, validation.New(), events, logger.Log)
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	registry.StartSweeper(sweepCtx, cfg.SessionIdleTimeout)

	// 6. Setup Auth Provider (JWKS)
	var jwksProvider *auth.Provider
	switch {
	case cfg.SessionJWKSURL != "":
		jwksProvider = auth.NewProvider(cfg.SessionJWKSURL)
	case cfg.SessionJWTSecret != "":
	case cfg.SessionAllowUnverified:
		logger.Log.Warn("Session tokens are decoded without signature verification")
	default:
		logger.Log.Fatal("No session key configured: set SESSION_JWKS_URL or SESSION_JWT_SECRET")
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Registry: registry,
		Events:   events,
		HealthUC: usecase.NewHealthUsecase(checks),
		Redis:    redis.Client(),
		JWKS:     jwksProvider,
		Config:   cfg,
		Logger:   logger.Log.Named("http"),
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting", zap.Int("sessions", registry.Len()))
}
