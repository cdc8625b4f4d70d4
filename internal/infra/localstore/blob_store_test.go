package localstore

import (
	"context"
	"testing"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) *BlobStore {
	t.Helper()

	store := NewBlobStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	_, err := store.Get(ctx, "preferences")
	assert.True(t, errors.Is(err, repository.ErrLocalKeyNotFound))

	require.NoError(t, store.Set(ctx, "preferences", []byte(`{"search_proximity":10}`)))
	require.NoError(t, store.Set(ctx, "preferences", []byte(`{"search_proximity":20}`)))

	got, err := store.Get(ctx, "preferences")
	require.NoError(t, err)
	assert.JSONEq(t, `{"search_proximity":20}`, string(got))

	require.NoError(t, store.Delete(ctx, "preferences"))
	_, err = store.Get(ctx, "preferences")
	assert.True(t, errors.Is(err, repository.ErrLocalKeyNotFound))
}

func TestBlobStore_DeleteMissingKey(t *testing.T) {
	assert.NoError(t, newMemStore(t).Delete(context.Background(), "missing"))
}

func TestOpenBlobStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBlobStore(ctx, "file://"+t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, "device_push_token", []byte(`"token-1"`)))

	got, err := store.Get(ctx, "device_push_token")
	require.NoError(t, err)
	assert.Equal(t, `"token-1"`, string(got))
}
