package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts, err := options(Config{URL: "rediss://:pw@cache.internal"})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.NotNil(t, opts.TLSConfig)

	opts, err = options(Config{URL: "redis://localhost:6380", Password: "explicit"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, "explicit", opts.Password)
	assert.Nil(t, opts.TLSConfig)

	_, err = options(Config{})
	assert.Error(t, err)
}

func TestInitializeAndHealthCheck(t *testing.T) {
	assert.Error(t, HealthCheck(context.Background()))

	mr := miniredis.RunT(t)
	require.NoError(t, Initialize(Config{URL: "redis://" + mr.Addr()}))
	t.Cleanup(func() { _ = Close() })

	require.NotNil(t, Client())
	assert.NoError(t, HealthCheck(context.Background()))
}
