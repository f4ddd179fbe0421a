package slot

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *RedisSlot {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client)
}

func TestSlotBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) Slot{
		"memory": func(t *testing.T) Slot { return NewMemory() },
		"redis":  func(t *testing.T) Slot { return setupTestRedis(t) },
	}

	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			_, err := s.Get(ctx, "artivisual_user")
			assert.ErrorIs(t, err, ErrEmpty)

			require.NoError(t, s.Set(ctx, "artivisual_user", []byte(`{"id":"3"}`)))
			v, err := s.Get(ctx, "artivisual_user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"3"}`, string(v))

			require.NoError(t, s.Set(ctx, "artivisual_user", []byte(`{"id":"4"}`)))
			v, err = s.Get(ctx, "artivisual_user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"4"}`, string(v))

			require.NoError(t, s.Delete(ctx, "artivisual_user"))
			_, err = s.Get(ctx, "artivisual_user")
			assert.ErrorIs(t, err, ErrEmpty)

			// deleting an absent key is fine
			require.NoError(t, s.Delete(ctx, "artivisual_user"))
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'z'

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))
}
