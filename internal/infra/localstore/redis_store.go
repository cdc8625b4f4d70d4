package localstore

import (
	"context"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each key as a redis string under a common prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps a redis client. Keys are stored as prefix:key.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}

	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrLocalKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, s.key(key), value, 0).Err()

	return errors.Wrapf(err, "redis set %s", key)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	err := s.client.Del(ctx, s.key(key)).Err()

	return errors.Wrapf(err, "redis del %s", key)
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
