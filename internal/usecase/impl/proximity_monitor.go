package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/geo"
	"shopradar/internal/scheduler"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProximityMonitorParams holds the dependencies of the store proximity monitor.
type ProximityMonitorParams struct {
	fx.In

	Location      usecase.LocationUsecase
	Persistence   usecase.PersistenceUsecase
	Auth          usecase.AuthState
	StoreRepo     repository.StoreRepository
	Local         repository.LocalStore
	Publisher     service.EventPublisher
	Notifications service.NotificationService
	Clock         clock.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

type proximityMonitor struct {
	location    usecase.LocationUsecase
	persistence usecase.PersistenceUsecase
	auth        usecase.AuthState
	storeRepo   repository.StoreRepository
	publisher   service.EventPublisher
	notifier    *deviceNotifier
	clock       clock.Clock
	config      *config.ProximityConfig
	logger      *slog.Logger

	busy atomic.Bool

	mu           sync.RWMutex
	loop         *scheduler.Loop
	stopped      bool
	stores       []entity.StoreLocation
	storesLoaded bool
	autoOpen     bool
	prompt       *entity.DetectedStore
	cooldowns    map[uuid.UUID]time.Time // store id -> last interaction
	saved        []entity.StoreLocation
}

// NewProximityMonitor creates the store proximity monitor.
func NewProximityMonitor(params ProximityMonitorParams) usecase.ProximityUsecase {
	m := &proximityMonitor{
		location:    params.Location,
		persistence: params.Persistence,
		auth:        params.Auth,
		storeRepo:   params.StoreRepo,
		publisher:   params.Publisher,
		notifier:    newDeviceNotifier(params.Local, params.Notifications, params.Logger),
		clock:       params.Clock,
		config:      params.Config.Proximity,
		logger:      params.Logger,
		autoOpen:    true,
		cooldowns:   make(map[uuid.UUID]time.Time),
	}

	m.auth.Subscribe(m.onAuthChange)

	return m
}

// Start loads the store snapshot and the auto-open preference and starts polling.
// The first check runs on the loop right away. A failed snapshot leaves the monitor inactive.
func (m *proximityMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.loop != nil {
		m.mu.Unlock()

		return nil
	}
	m.stopped = false
	m.mu.Unlock()

	if err := m.loadStores(ctx); err != nil {
		m.logger.Error("[ProximityMonitor] failed to load stores, monitor stays inactive", slog.Any("error", err))

		return err
	}

	m.reloadPreference(ctx)

	loop := scheduler.New(m.clock, m.config.Interval, func(ctx context.Context) {
		if _, err := m.Check(ctx); err != nil {
			m.logger.Debug("[ProximityMonitor] check skipped", slog.Any("error", err))
		}
	}, scheduler.WithImmediate())

	m.mu.Lock()
	m.loop = loop
	m.mu.Unlock()

	loop.Start(context.WithoutCancel(ctx))
	m.logger.Info("[ProximityMonitor] started",
		slog.Int("stores", len(m.snapshot())),
		slog.Float64("radius_meters", m.config.RadiusMeters),
	)

	return nil
}

// Stop cancels polling. Ticks and lookups still in flight are discarded.
func (m *proximityMonitor) Stop() {
	m.mu.Lock()
	loop := m.loop
	m.loop = nil
	m.stopped = true
	m.mu.Unlock()

	if loop != nil {
		loop.Stop()
		m.logger.Info("[ProximityMonitor] stopped")
	}
}

// Check surfaces the first store in snapshot order that is within the radius
// and out of cooldown. It replaces the previous prompt, or clears it when no store qualifies.
func (m *proximityMonitor) Check(ctx context.Context) (*entity.DetectedStore, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return m.currentPrompt(), nil
	}
	defer m.busy.Store(false)

	m.mu.RLock()
	active := !m.stopped && m.storesLoaded && m.autoOpen
	m.mu.RUnlock()
	if !active {
		return nil, nil
	}

	fix, err := m.location.GetLocation(ctx, false)
	if err != nil {
		return m.currentPrompt(), err
	}

	now := m.clock.Now()

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()

		return nil, nil
	}

	var found *entity.DetectedStore
	for _, store := range m.stores {
		distance := geo.DistanceMeters(fix.Lat, fix.Lng, store.Lat, store.Lng)
		if distance > m.config.RadiusMeters {
			continue
		}
		if last, ok := m.cooldowns[store.ID]; ok && now.Sub(last) <= m.config.Cooldown {
			continue
		}

		found = &entity.DetectedStore{
			StoreLocation:  store,
			DistanceMeters: distance,
			DetectedAt:     now,
		}

		break
	}

	raised := found != nil && (m.prompt == nil || m.prompt.ID != found.ID)
	if found != nil && !raised {
		found.DetectedAt = m.prompt.DetectedAt
	}
	m.prompt = found
	m.mu.Unlock()

	if raised {
		m.announce(ctx, found)
	}

	return copyDetected(found), nil
}

// State returns a snapshot of the monitor.
func (m *proximityMonitor) State() entity.ProximityState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state := entity.ProximityState{
		State:        entity.MonitorStateInactive,
		SavedStores:  append([]entity.StoreLocation{}, m.saved...),
		StoresLoaded: m.storesLoaded,
		AutoOpen:     m.autoOpen,
	}

	if m.loop == nil || !m.storesLoaded || !m.autoOpen {
		return state
	}

	state.State = entity.MonitorStatePolling
	if m.prompt != nil {
		state.State = entity.MonitorStatePrompting
		state.Prompt = copyDetected(m.prompt)
	}

	return state
}

// Dismiss closes the prompt and starts the cooldown of the store.
func (m *proximityMonitor) Dismiss(_ context.Context, storeID uuid.UUID, remember bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompt = nil
	m.cooldowns[storeID] = m.clock.Now()

	if !remember {
		return nil
	}

	store, ok := m.findStore(storeID)
	if !ok {
		return domainerrors.ErrStoreNotFound
	}

	for _, saved := range m.saved {
		if saved.ID == storeID {
			return nil
		}
	}
	m.saved = append(m.saved, store)
	m.logger.Info("[ProximityMonitor] store saved for later", slog.String("store_id", storeID.String()))

	return nil
}

// View closes the prompt, starts the cooldown of the store and returns it.
func (m *proximityMonitor) View(_ context.Context, storeID uuid.UUID) (*entity.StoreLocation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompt = nil
	m.cooldowns[storeID] = m.clock.Now()

	store, ok := m.findStore(storeID)
	if !ok {
		return nil, domainerrors.ErrStoreNotFound
	}

	return &store, nil
}

// SavedStores returns the stores saved for later.
func (m *proximityMonitor) SavedStores() []entity.StoreLocation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]entity.StoreLocation{}, m.saved...)
}

// ClearSavedStore removes one store from the saved list.
func (m *proximityMonitor) ClearSavedStore(storeID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.saved[:0]
	for _, saved := range m.saved {
		if saved.ID != storeID {
			kept = append(kept, saved)
		}
	}
	m.saved = kept
}

// ClearSavedStores empties the saved list.
func (m *proximityMonitor) ClearSavedStores() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saved = nil
}

// PreferencesChanged applies a new auto-open setting.
func (m *proximityMonitor) PreferencesChanged(_ context.Context, prefs *entity.Preferences) {
	m.setAutoOpen(prefs.AutoOpenNearbyStores)
}

func (m *proximityMonitor) onAuthChange(ctx context.Context, event entity.AuthEvent, _ entity.Session) {
	m.logger.Debug("[ProximityMonitor] auth state changed, reloading preference", slog.String("event", string(event)))
	m.reloadPreference(ctx)
}

func (m *proximityMonitor) reloadPreference(ctx context.Context) {
	prefs, err := m.persistence.LoadPreferences(ctx)
	if err != nil {
		m.logger.Warn("[ProximityMonitor] failed to load preferences, keeping current setting", slog.Any("error", err))

		return
	}

	m.setAutoOpen(prefs.AutoOpenNearbyStores)
}

func (m *proximityMonitor) setAutoOpen(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.autoOpen = enabled
	if !enabled {
		m.prompt = nil
	}
}

func (m *proximityMonitor) loadStores(ctx context.Context) error {
	stores, err := m.storeRepo.FindActiveStores(ctx)
	if err != nil {
		return fmt.Errorf("failed to find active stores: %w", err)
	}

	snapshot := make([]entity.StoreLocation, 0, len(stores))
	for _, store := range stores {
		location, ok := store.Location()
		if !ok {
			m.logger.Warn("[ProximityMonitor] skipping store without coordinates", slog.String("store_id", store.ID.String()))

			continue
		}
		snapshot = append(snapshot, location)
	}

	m.mu.Lock()
	m.stores = snapshot
	m.storesLoaded = true
	m.mu.Unlock()

	return nil
}

func (m *proximityMonitor) announce(ctx context.Context, detected *entity.DetectedStore) {
	m.logger.Info("[ProximityMonitor] store nearby",
		slog.String("store_id", detected.ID.String()),
		slog.Float64("distance_meters", detected.DistanceMeters),
	)

	if m.publisher != nil {
		event := &entity.StoreDetectedEvent{
			StoreID:        detected.ID,
			StoreName:      detected.Name,
			DistanceMeters: detected.DistanceMeters,
			UserID:         m.auth.Current().UserID,
			DetectedAt:     m.clock.Now(),
		}
		if err := m.publisher.PublishStoreDetected(ctx, event); err != nil {
			m.logger.Warn("[ProximityMonitor] failed to publish store detected event", slog.Any("error", err))
		}
	}

	m.notifier.notify(ctx,
		fmt.Sprintf("You're near %s", detected.Name),
		fmt.Sprintf("%s is %s away. Open the store?", detected.Name, geo.FormatDistance(detected.DistanceMeters)),
		map[string]string{
			"type":     "store_nearby",
			"store_id": detected.ID.String(),
		},
	)
}

func (m *proximityMonitor) currentPrompt() *entity.DetectedStore {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyDetected(m.prompt)
}

func (m *proximityMonitor) snapshot() []entity.StoreLocation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.stores
}

// findStore must be called with m.mu held.
func (m *proximityMonitor) findStore(storeID uuid.UUID) (entity.StoreLocation, bool) {
	for _, store := range m.stores {
		if store.ID == storeID {
			return store, true
		}
	}

	return entity.StoreLocation{}, false
}

func copyDetected(d *entity.DetectedStore) *entity.DetectedStore {
	if d == nil {
		return nil
	}
	c := *d

	return &c
}
