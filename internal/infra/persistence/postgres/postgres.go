// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/lifecycle"
	"shopradar/internal/errors"
	"shopradar/internal/scheduler"

	"github.com/benbjohnson/clock"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Clock  clock.Clock
	Logger *slog.Logger
}

// New creates the GORM client and ties its pool to the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger)
	loop := scheduler.New(params.Clock, dbPoolMonitorInterval, monitor.check)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			loop.Start(context.Background())

			return nil
		},
		OnStop: func(_ context.Context) error {
			loop.Stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor logs connection pool waits between two checks.
type poolMonitor struct {
	sqlDB  *sql.DB
	logger *slog.Logger
	prev   sql.DBStats
}

func newPoolMonitor(sqlDB *sql.DB, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{sqlDB: sqlDB, logger: logger, prev: sqlDB.Stats()}
}

func (m *poolMonitor) check(ctx context.Context) {
	cur := m.sqlDB.Stats()
	waitDelta := cur.WaitCount - m.prev.WaitCount
	waitDurationDelta := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waitDelta <= 0 {
		return
	}

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
}
