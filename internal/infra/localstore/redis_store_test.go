package localstore

import (
	"context"
	"testing"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_Key(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, "shopradar:preferences", NewRedisStore(client, "shopradar").key("preferences"))
	assert.Equal(t, "preferences", NewRedisStore(client, "").key("preferences"))
}

func TestRedisStore_ConnectionErrorIsNotMissingKey(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0", MaxRetries: -1})
	store := NewRedisStore(client, "shopradar")
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Get(context.Background(), "preferences")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrLocalKeyNotFound))
}
