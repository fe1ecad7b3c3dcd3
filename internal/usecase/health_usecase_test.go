package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-talent-session/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthUsecase(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	status, healthy := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"redis": ok}).Check(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, map[string]string{"status": "ok", "redis": "ok"}, status)

	status, healthy = usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"redis": down}).Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "connection refused", status["redis"])
}
