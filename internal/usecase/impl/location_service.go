package impl

import (
	"context"
	"log/slog"
	"sync"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

const sampleFlightKey = "sample"

type locationService struct {
	provider service.PositionProvider
	local    repository.LocalStore
	clock    clock.Clock
	config   *config.LocationConfig
	logger   *slog.Logger

	flight singleflight.Group

	mu    sync.RWMutex
	state entity.LocationState
}

// NewLocationService creates the high-precision location sampler.
func NewLocationService(
	provider service.PositionProvider,
	local repository.LocalStore,
	clk clock.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		provider: provider,
		local:    local,
		clock:    clk,
		config:   cfg.Location,
		logger:   logger,
		state: entity.LocationState{
			Status:    entity.LocationStatusIdle,
			UpdatedAt: clk.Now(),
		},
	}
}

// GetLocation returns a fresh cached fix or samples the platform.
func (s *locationService) GetLocation(ctx context.Context, forceRefresh bool) (*entity.LocationFix, error) {
	if !forceRefresh {
		if fix, ok := s.cachedFix(ctx); ok {
			s.setState(entity.LocationStatusSuccess, fix, "")

			return fix, nil
		}
	}

	// Callers joining a running sample share its result, so the run must
	// not depend on the first caller staying around.
	result, err, shared := s.flight.Do(sampleFlightKey, func() (any, error) {
		return s.sample(context.WithoutCancel(ctx))
	})
	if shared {
		s.logger.Debug("[Sampler] joined in-flight sampling run")
	}
	if err != nil {
		return nil, err
	}

	fix := *result.(*entity.LocationFix)

	return &fix, nil
}

// State returns a snapshot of the sampler.
func (s *locationService) State() entity.LocationState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	if state.Fix != nil {
		fix := *state.Fix
		state.Fix = &fix
	}

	return state
}

func (s *locationService) sample(ctx context.Context) (*entity.LocationFix, error) {
	if !s.provider.Available() {
		return nil, s.fail(ctx, domainerrors.ErrGeolocationUnavailable)
	}

	s.setState(entity.LocationStatusLoading, nil, "")

	var best *entity.LocationFix
	for i := 0; i < s.config.Samples; i++ {
		if i > 0 && s.config.SampleInterval > 0 {
			select {
			case <-ctx.Done():
				return nil, s.fail(ctx, ctx.Err())
			case <-s.clock.After(s.config.SampleInterval):
			}
		}

		reading, err := s.readOnce(ctx)
		if err != nil {
			if best == nil || isPermissionDenied(err) {
				return nil, s.fail(ctx, err)
			}

			s.logger.Warn("[Sampler] sampling ended early, keeping best reading",
				slog.Int("readings", i),
				slog.Any("error", err),
			)

			break
		}

		if best == nil || reading.AccuracyMeters < best.AccuracyMeters {
			best = reading
		}
	}

	if best == nil {
		return nil, s.fail(ctx, domainerrors.NewPositionError(domainerrors.PositionUnavailable, "no readings taken"))
	}

	s.storeFix(ctx, best)
	s.setState(entity.LocationStatusSuccess, best, "")
	s.logger.Info("[Sampler] location updated", slog.Float64("accuracy_meters", best.AccuracyMeters))

	return best, nil
}

func (s *locationService) readOnce(ctx context.Context) (*entity.LocationFix, error) {
	readCtx, cancel := s.clock.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	fix, err := s.provider.CurrentPosition(readCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.NewPositionError(domainerrors.PositionTimeout, "position request timed out")
		}

		return nil, err
	}

	return fix, nil
}

func (s *locationService) fail(ctx context.Context, cause error) error {
	if err := s.local.Delete(ctx, constants.LocalKeyLocationCache); err != nil {
		s.logger.Error("[Sampler] failed to clear location cache", slog.Any("error", err))
	}

	mapped := domainerrors.FromPositionError(cause)
	s.setState(entity.LocationStatusDenied, nil, cause.Error())
	s.logger.Warn("[Sampler] failed to get location", slog.Any("error", cause))

	return mapped
}

func (s *locationService) cachedFix(ctx context.Context) (*entity.LocationFix, bool) {
	var cached entity.CachedFix
	found, err := readLocalJSON(ctx, s.local, constants.LocalKeyLocationCache, &cached)
	if err != nil {
		s.logger.Warn("[Sampler] ignoring location cache", slog.Any("error", err))

		return nil, false
	}

	if !found || s.clock.Since(cached.CachedAt) >= s.config.CacheMaxAge {
		return nil, false
	}

	return &cached.Fix, true
}

func (s *locationService) storeFix(ctx context.Context, fix *entity.LocationFix) {
	cached := entity.CachedFix{Fix: *fix, CachedAt: s.clock.Now()}
	if err := writeLocalJSON(ctx, s.local, constants.LocalKeyLocationCache, cached); err != nil {
		s.logger.Error("[Sampler] failed to write location cache", slog.Any("error", err))
	}
}

func (s *locationService) setState(status entity.LocationStatus, fix *entity.LocationFix, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = entity.LocationState{
		Status:    status,
		Fix:       fix,
		Error:     errMsg,
		UpdatedAt: s.clock.Now(),
	}
}

func isPermissionDenied(err error) bool {
	var posErr *domainerrors.PositionError

	return errors.As(err, &posErr) && posErr.Kind == domainerrors.PositionPermissionDenied
}
