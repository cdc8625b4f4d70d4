package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	"shopradar/internal/geo"
	"shopradar/internal/scheduler"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ReminderMonitorParams holds the dependencies of the product reminder monitor.
type ReminderMonitorParams struct {
	fx.In

	Location      usecase.LocationUsecase
	Persistence   usecase.PersistenceUsecase
	Auth          usecase.AuthState
	ProductRepo   repository.ProductRepository
	Local         repository.LocalStore
	Publisher     service.EventPublisher
	Notifications service.NotificationService
	Clock         clock.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

type reminderMonitor struct {
	location    usecase.LocationUsecase
	persistence usecase.PersistenceUsecase
	auth        usecase.AuthState
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	notifier    *deviceNotifier
	clock       clock.Clock
	config      *config.ReminderConfig
	logger      *slog.Logger

	busy atomic.Bool

	mu            sync.RWMutex
	checkLoop     *scheduler.Loop
	refreshLoop   *scheduler.Loop
	stopped       bool
	notifyEnabled bool
	reminders     []*entity.ProductReminder
	notified      map[string]struct{}
	notifications map[string]*entity.ReminderNotification
}

// NewReminderMonitor creates the product reminder monitor.
func NewReminderMonitor(params ReminderMonitorParams) usecase.ReminderUsecase {
	m := &reminderMonitor{
		location:      params.Location,
		persistence:   params.Persistence,
		auth:          params.Auth,
		productRepo:   params.ProductRepo,
		publisher:     params.Publisher,
		notifier:      newDeviceNotifier(params.Local, params.Notifications, params.Logger),
		clock:         params.Clock,
		config:        params.Config.Reminder,
		logger:        params.Logger,
		notifyEnabled: true,
		notified:      make(map[string]struct{}),
		notifications: make(map[string]*entity.ReminderNotification),
	}

	m.auth.Subscribe(m.onAuthChange)

	return m
}

// Start loads the reminders and starts the check and refresh loops.
func (m *reminderMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.checkLoop != nil {
		m.mu.Unlock()

		return nil
	}
	m.stopped = false
	m.mu.Unlock()

	if err := m.Refresh(ctx); err != nil {
		m.logger.Warn("[ReminderMonitor] initial reminder load failed", slog.Any("error", err))
	}

	loopCtx := context.WithoutCancel(ctx)
	checkLoop := scheduler.New(m.clock, m.config.Interval, func(ctx context.Context) {
		if _, err := m.Check(ctx); err != nil {
			m.logger.Debug("[ReminderMonitor] check skipped", slog.Any("error", err))
		}
	})
	refreshLoop := scheduler.New(m.clock, m.config.RefreshInterval, func(ctx context.Context) {
		if err := m.Refresh(ctx); err != nil {
			m.logger.Warn("[ReminderMonitor] reminder refresh failed", slog.Any("error", err))
		}
	})

	m.mu.Lock()
	m.checkLoop = checkLoop
	m.refreshLoop = refreshLoop
	m.mu.Unlock()

	checkLoop.Start(loopCtx)
	refreshLoop.Start(loopCtx)
	m.logger.Info("[ReminderMonitor] started",
		slog.Int("reminders", len(m.Reminders())),
		slog.Float64("radius_meters", m.config.RadiusMeters),
	)

	return nil
}

// Stop cancels both loops. Ticks still in flight are discarded.
func (m *reminderMonitor) Stop() {
	m.mu.Lock()
	checkLoop, refreshLoop := m.checkLoop, m.refreshLoop
	m.checkLoop, m.refreshLoop = nil, nil
	m.stopped = true
	m.mu.Unlock()

	if checkLoop != nil {
		checkLoop.Stop()
	}
	if refreshLoop != nil {
		refreshLoop.Stop()
		m.logger.Info("[ReminderMonitor] stopped")
	}
}

// Refresh reloads the notification preference and the pending reminders of the current scope.
func (m *reminderMonitor) Refresh(ctx context.Context) error {
	prefs, err := m.persistence.LoadPreferences(ctx)
	if err != nil {
		m.logger.Warn("[ReminderMonitor] failed to load preferences, keeping current setting", slog.Any("error", err))
	} else {
		m.mu.Lock()
		m.notifyEnabled = prefs.NotifyFailedSearches
		m.mu.Unlock()
	}

	m.mu.RLock()
	enabled := m.notifyEnabled
	m.mu.RUnlock()

	if !enabled {
		m.setReminders(nil)

		return nil
	}

	reminders, err := m.persistence.LoadReminders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	pending := make([]*entity.ProductReminder, 0, len(reminders))
	for _, r := range reminders {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	m.setReminders(pending)

	return nil
}

// Check matches the pending reminders against in-stock products near the current fix.
func (m *reminderMonitor) Check(ctx context.Context) ([]*entity.ReminderNotification, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer m.busy.Store(false)

	m.mu.RLock()
	active := !m.stopped && m.notifyEnabled
	reminders := make([]*entity.ProductReminder, len(m.reminders))
	for i, r := range m.reminders {
		c := *r
		reminders[i] = &c
	}
	m.mu.RUnlock()

	if !active || len(reminders) == 0 {
		return nil, nil
	}

	fix, err := m.location.GetLocation(ctx, false)
	if err != nil {
		return nil, err
	}

	terms, productIDs := reminderCriteria(reminders)
	if len(terms) == 0 && len(productIDs) == 0 {
		return nil, nil
	}

	products, err := m.productRepo.FindAvailableForReminders(ctx, terms, productIDs)
	if err != nil {
		m.logger.Error("[ReminderMonitor] failed to query products for reminders", slog.Any("error", err))

		return nil, fmt.Errorf("failed to find products for reminders: %w", err)
	}

	var raised []*entity.ReminderNotification
	for _, reminder := range reminders {
		if reminder.InCooldown(m.clock.Now(), m.config.Cooldown) {
			continue
		}

		for _, product := range products {
			if !matchesReminder(reminder, product) || !product.HasCoordinates() {
				continue
			}

			distance := geo.DistanceMeters(fix.Lat, fix.Lng, *product.StoreLat, *product.StoreLng)
			if distance > m.config.RadiusMeters {
				continue
			}

			notification, ok := m.raise(ctx, reminder, product, distance)
			if ok {
				raised = append(raised, notification)
			}
		}
	}

	return raised, nil
}

// Reminders returns the pending reminders the monitor works with.
func (m *reminderMonitor) Reminders() []*entity.ProductReminder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entity.ProductReminder, len(m.reminders))
	for i, r := range m.reminders {
		c := *r
		out[i] = &c
	}

	return out
}

// Notifications returns the notifications still displayed, oldest first.
func (m *reminderMonitor) Notifications() []*entity.ReminderNotification {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.ReminderNotification, 0, len(m.notifications))
	for id, n := range m.notifications {
		if !now.Before(n.ExpiresAt) {
			delete(m.notifications, id)

			continue
		}
		c := *n
		out = append(out, &c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].RaisedAt.Equal(out[j].RaisedAt) {
			return out[i].ID < out[j].ID
		}

		return out[i].RaisedAt.Before(out[j].RaisedAt)
	})

	return out
}

// View marks the reminder notified and returns the store page focused on the product.
func (m *reminderMonitor) View(ctx context.Context, notificationID string) (string, error) {
	notification, err := m.acknowledge(ctx, notificationID)
	if err != nil {
		return "", err
	}

	return notification.Target, nil
}

// Acknowledge handles a notification closed without action. It starts the same
// cooldown as View.
func (m *reminderMonitor) Acknowledge(ctx context.Context, notificationID string) error {
	_, err := m.acknowledge(ctx, notificationID)

	return err
}

// Dismiss permanently deactivates a reminder.
func (m *reminderMonitor) Dismiss(ctx context.Context, reminderID uuid.UUID) error {
	if err := m.persistence.ReminderStore().Dismiss(ctx, reminderID, m.clock.Now()); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return domainerrors.ErrReminderNotFound
		}

		return fmt.Errorf("failed to dismiss reminder: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.reminders[:0]
	for _, r := range m.reminders {
		if r.ID != reminderID {
			kept = append(kept, r)
		}
	}
	m.reminders = kept

	for id, n := range m.notifications {
		if n.ReminderID == reminderID {
			delete(m.notifications, id)
		}
	}

	return nil
}

// ClearAll removes every reminder of the current scope.
func (m *reminderMonitor) ClearAll(ctx context.Context) error {
	if err := m.persistence.ReminderStore().Clear(ctx, m.clock.Now()); err != nil {
		return fmt.Errorf("failed to clear reminders: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reminders = nil
	m.notifications = make(map[string]*entity.ReminderNotification)

	return nil
}

// Create saves a reminder unless a pending reminder with the same term exists.
func (m *reminderMonitor) Create(ctx context.Context, input *usecase.CreateReminderInput) (*entity.ProductReminder, bool, error) {
	term := strings.TrimSpace(input.SearchTerm)
	if term == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("search term is required")
	}

	store := m.persistence.ReminderStore()
	existing, err := store.LoadReminders(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load reminders: %w", err)
	}

	key := entity.NormalizeTerm(term)
	for _, r := range existing {
		if r.IsPending() && r.TermKey() == key {
			return r, false, nil
		}
	}

	reminder := &entity.ProductReminder{
		ID:         uuid.New(),
		SearchTerm: term,
		ProductID:  input.ProductID,
		StoreID:    input.StoreID,
		CreatedAt:  m.clock.Now(),
		IsActive:   true,
	}
	if err := store.AddReminder(ctx, reminder); err != nil {
		return nil, false, fmt.Errorf("failed to save reminder: %w", err)
	}

	m.mu.Lock()
	if m.notifyEnabled {
		c := *reminder
		m.reminders = append(m.reminders, &c)
	}
	m.mu.Unlock()

	m.logger.Info("[ReminderMonitor] reminder created", slog.String("search_term", term))

	return reminder, true, nil
}

// PreferencesChanged applies a new notify-failed-searches setting.
func (m *reminderMonitor) PreferencesChanged(ctx context.Context, prefs *entity.Preferences) {
	m.mu.Lock()
	changed := m.notifyEnabled != prefs.NotifyFailedSearches
	m.notifyEnabled = prefs.NotifyFailedSearches
	m.mu.Unlock()

	if changed {
		if err := m.Refresh(ctx); err != nil {
			m.logger.Warn("[ReminderMonitor] reminder refresh failed", slog.Any("error", err))
		}
	}
}

func (m *reminderMonitor) onAuthChange(ctx context.Context, event entity.AuthEvent, _ entity.Session) {
	m.logger.Debug("[ReminderMonitor] auth state changed, reloading reminders", slog.String("event", string(event)))

	m.mu.Lock()
	m.notifications = make(map[string]*entity.ReminderNotification)
	m.mu.Unlock()

	if err := m.Refresh(ctx); err != nil {
		m.logger.Warn("[ReminderMonitor] reminder refresh failed", slog.Any("error", err))
	}
}

// raise records a match unless it was already raised in this process.
func (m *reminderMonitor) raise(
	ctx context.Context,
	reminder *entity.ProductReminder,
	product *entity.ProductAvailability,
	distance float64,
) (*entity.ReminderNotification, bool) {
	key := entity.NotificationKey(reminder.ID, product.ProductID, product.StoreID)
	now := m.clock.Now()

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()

		return nil, false
	}
	if _, seen := m.notified[key]; seen {
		m.mu.Unlock()

		return nil, false
	}
	m.notified[key] = struct{}{}

	notification := &entity.ReminderNotification{
		ID:             key,
		ReminderID:     reminder.ID,
		ProductID:      product.ProductID,
		StoreID:        product.StoreID,
		ProductName:    product.ProductName,
		StoreName:      product.StoreName,
		Message:        fmt.Sprintf("A store near you now has %q you searched for earlier.", product.ProductName),
		DistanceMeters: distance,
		Target:         entity.StoreProductTarget(product.StoreID, product.ProductID),
		RaisedAt:       now,
		ExpiresAt:      now.Add(m.config.NotificationTTL),
	}
	m.notifications[key] = notification
	m.mu.Unlock()

	m.markNotified(ctx, reminder.ID, now)
	m.announce(ctx, reminder, notification)

	c := *notification

	return &c, true
}

func (m *reminderMonitor) acknowledge(ctx context.Context, notificationID string) (*entity.ReminderNotification, error) {
	now := m.clock.Now()

	m.mu.Lock()
	notification, ok := m.notifications[notificationID]
	if ok {
		delete(m.notifications, notificationID)
	}
	m.mu.Unlock()

	if !ok || !now.Before(notification.ExpiresAt) {
		return nil, domainerrors.ErrNotificationNotFound
	}

	m.markNotified(ctx, notification.ReminderID, now)

	return notification, nil
}

func (m *reminderMonitor) markNotified(ctx context.Context, reminderID uuid.UUID, at time.Time) {
	if err := m.persistence.ReminderStore().MarkNotified(ctx, reminderID, at); err != nil {
		m.logger.Error("[ReminderMonitor] failed to mark reminder notified",
			slog.String("reminder_id", reminderID.String()),
			slog.Any("error", err),
		)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.reminders {
		if r.ID == reminderID {
			notifiedAt := at
			r.NotifiedAt = &notifiedAt
		}
	}
}

func (m *reminderMonitor) announce(ctx context.Context, reminder *entity.ProductReminder, notification *entity.ReminderNotification) {
	m.logger.Info("[ReminderMonitor] reminder matched",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("product_id", notification.ProductID.String()),
		slog.String("store_id", notification.StoreID.String()),
		slog.Float64("distance_meters", notification.DistanceMeters),
	)

	if m.publisher != nil {
		event := &entity.ReminderMatchedEvent{
			ReminderID:     reminder.ID,
			ProductID:      notification.ProductID,
			StoreID:        notification.StoreID,
			SearchTerm:     reminder.SearchTerm,
			DistanceMeters: notification.DistanceMeters,
			UserID:         m.auth.Current().UserID,
			MatchedAt:      notification.RaisedAt,
		}
		if err := m.publisher.PublishReminderMatched(ctx, event); err != nil {
			m.logger.Warn("[ReminderMonitor] failed to publish reminder matched event", slog.Any("error", err))
		}
	}

	m.notifier.notify(ctx, "Product nearby", notification.Message, map[string]string{
		"type":        "reminder_matched",
		"reminder_id": reminder.ID.String(),
		"target":      notification.Target,
	})
}

func (m *reminderMonitor) setReminders(reminders []*entity.ProductReminder) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reminders = reminders
}

// reminderCriteria returns the distinct lowercased terms and product ids of the reminders.
func reminderCriteria(reminders []*entity.ProductReminder) ([]string, []uuid.UUID) {
	seenTerms := make(map[string]struct{})
	seenIDs := make(map[uuid.UUID]struct{})

	var terms []string
	var productIDs []uuid.UUID
	for _, r := range reminders {
		if key := r.TermKey(); key != "" {
			if _, ok := seenTerms[key]; !ok {
				seenTerms[key] = struct{}{}
				terms = append(terms, key)
			}
		}
		if r.ProductID != nil {
			if _, ok := seenIDs[*r.ProductID]; !ok {
				seenIDs[*r.ProductID] = struct{}{}
				productIDs = append(productIDs, *r.ProductID)
			}
		}
	}

	return terms, productIDs
}

// matchesReminder applies the product id when set, the term otherwise, and the optional store constraint.
func matchesReminder(reminder *entity.ProductReminder, product *entity.ProductAvailability) bool {
	if reminder.StoreID != nil && *reminder.StoreID != product.StoreID {
		return false
	}

	if reminder.ProductID != nil {
		return *reminder.ProductID == product.ProductID
	}

	return strings.Contains(strings.ToLower(product.ProductName), reminder.TermKey())
}
