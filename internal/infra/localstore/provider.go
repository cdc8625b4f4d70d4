package localstore

import (
	"context"
	"io"
	"log/slog"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/lifecycle"
	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const defaultBucketURL = "mem://"

// StoreParams holds dependencies for LocalStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type closableStore interface {
	repository.LocalStore
	io.Closer
}

// NewLocalStore creates the LocalStore named by localStore.driver.
// Without configuration the store lives in memory.
func NewLocalStore(params StoreParams) (repository.LocalStore, error) {
	cfg := params.Config.LocalStore
	if cfg == nil {
		cfg = &config.LocalStoreConfig{}
	}

	var (
		store closableStore
		ping  func(ctx context.Context) error
	)
	switch cfg.Driver {
	case "", constants.LocalStoreDriverBlob:
		url := cfg.BucketURL
		if url == "" {
			url = defaultBucketURL
		}
		blobStore, err := OpenBlobStore(context.Background(), url)
		if err != nil {
			return nil, err
		}
		store = blobStore
		params.Logger.Info("Using blob local store", slog.String("bucket", url))

	case constants.LocalStoreDriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis local store")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = NewRedisStore(client, cfg.Redis.Prefix)
		ping = func(ctx context.Context) error {
			return errors.Wrap(client.Ping(ctx).Err(), "ping redis")
		}
		params.Logger.Info("Using redis local store", slog.String("addr", cfg.Redis.Addr))

	default:
		return nil, errors.Errorf("unknown local store driver: %s", cfg.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if ping == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Module provides the local store and the guest collections kept in it
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLocalStore,
		NewGuestReminderStore,
		NewGuestFavoriteStore,
	),
)
