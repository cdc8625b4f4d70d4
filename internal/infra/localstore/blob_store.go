// Package localstore implements device-local key-value storage and the guest
// collections kept in it.
package localstore

import (
	"context"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStore keeps each key as one object of a gocloud bucket.
type BlobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens the bucket at url (file:///var/lib/shopradar, mem://).
func OpenBlobStore(ctx context.Context, url string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open local bucket %s", url)
	}

	return NewBlobStore(bucket), nil
}

// NewBlobStore wraps an opened bucket.
func NewBlobStore(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrLocalKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: "application/json"})

	return errors.Wrapf(err, "write %s", key)
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

// Close closes the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
