package impl

import (
	"context"
	"encoding/json"

	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"
)

// readLocalJSON decodes the value under key into dst. It reports false when the key is missing.
func readLocalJSON(ctx context.Context, local repository.LocalStore, key string, dst any) (bool, error) {
	raw, err := local.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLocalKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "read local key %s", key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "decode local key %s", key)
	}

	return true, nil
}

func writeLocalJSON(ctx context.Context, local repository.LocalStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode local key %s", key)
	}

	if err := local.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "write local key %s", key)
	}

	return nil
}
