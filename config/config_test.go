package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SLOT_BACKEND", "")

	_, err := LoadEnv()
	require.Error(t, err, "empty SLOT_BACKEND is not a known backend")

	t.Setenv("SLOT_BACKEND", "memory")
	_, err = LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", JWT_SECRET)
	assert.Equal(t, SlotMemory, SLOT_BACKEND)
	assert.Equal(t, "admin@artivisual.com", ADMIN_EMAIL)
	assert.False(t, LOG_PRETTY)
}

func TestLoadEnv_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadEnv_Backends(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	t.Run("postgres needs DB_URL", func(t *testing.T) {
		t.Setenv("SLOT_BACKEND", "postgres")
		t.Setenv("DB_URL", "")
		_, err := LoadEnv()
		require.Error(t, err)

		t.Setenv("DB_URL", "postgres://localhost/artivisual")
		_, err = LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/artivisual", DB_URL)
	})

	t.Run("redis", func(t *testing.T) {
		t.Setenv("SLOT_BACKEND", "Redis")
		t.Setenv("REDIS_ADDR", "cache:6380")
		t.Setenv("REDIS_DB", "2")
		_, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, SlotRedis, SLOT_BACKEND)
		assert.Equal(t, "cache:6380", REDIS_ADDR)
		assert.Equal(t, 2, REDIS_DB)

		t.Setenv("REDIS_DB", "two")
		_, err = LoadEnv()
		require.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("SLOT_BACKEND", "etcd")
		_, err := LoadEnv()
		require.Error(t, err)
	})
}

func TestLoadEnv_AuthDelay(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SLOT_BACKEND", "memory")

	t.Setenv("AUTH_DELAY", "250ms")
	_, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, AUTH_DELAY)

	t.Setenv("AUTH_DELAY", "soon")
	_, err = LoadEnv()
	require.Error(t, err)
}
