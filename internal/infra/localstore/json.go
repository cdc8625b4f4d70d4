package localstore

import (
	"context"
	"encoding/json"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"
)

// loadList decodes the JSON array under key. A missing key is an empty list.
func loadList[T any](ctx context.Context, local repository.LocalStore, key string) ([]*T, error) {
	raw, err := local.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLocalKeyNotFound) {
			return []*T{}, nil
		}

		return nil, err
	}

	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", key)
	}
	if items == nil {
		items = []*T{}
	}

	return items, nil
}

func saveList[T any](ctx context.Context, local repository.LocalStore, key string, items []*T) error {
	if items == nil {
		items = []*T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return local.Set(ctx, key, raw)
}
