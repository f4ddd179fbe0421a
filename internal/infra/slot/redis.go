package slot

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const redisPrefix = "artivisual:slot:"

// RedisSlot keeps keys under a fixed prefix with no expiry.
type RedisSlot struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, redisPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEmpty
		}
		return nil, errors.Wrapf(err, "read slot %q", key)
	}
	return v, nil
}

func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, redisPrefix+key, value, 0).Err()
	return errors.Wrapf(err, "write slot %q", key)
}

func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	err := s.client.Del(ctx, redisPrefix+key).Err()
	return errors.Wrapf(err, "delete slot %q", key)
}
