package impl

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"
	mockSvc "shopradar/internal/mocks/service"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderMonitorFixtures struct {
	monitor     *reminderMonitor
	location    *mockUsecase.MockLocationUsecase
	persistence *mockUsecase.MockPersistenceUsecase
	store       *mockRepo.MockReminderStore
	auth        usecase.AuthState
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	clock       *clock.Mock
	milk        *entity.ProductReminder
	product     *entity.ProductAvailability
}

func createTestReminderMonitor(t *testing.T) reminderMonitorFixtures {
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC))

	fx := reminderMonitorFixtures{
		location:    mockUsecase.NewMockLocationUsecase(t),
		persistence: mockUsecase.NewMockPersistenceUsecase(t),
		store:       mockRepo.NewMockReminderStore(t),
		auth:        NewAuthState(),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		clock:       clk,
		milk: &entity.ProductReminder{
			ID:         uuid.New(),
			SearchTerm: "Milk",
			CreatedAt:  clk.Now().Add(-time.Hour),
			IsActive:   true,
		},
		product: &entity.ProductAvailability{
			ProductID:   uuid.New(),
			ProductName: "Whole Milk 1L",
			StoreID:     uuid.New(),
			StoreName:   "Corner Market",
			// About 3 km north of the user.
			StoreLat: ptr(storeLat + 0.027),
			StoreLng: ptr(storeLng),
		},
	}

	fx.persistence.EXPECT().ReminderStore().Return(fx.store).Maybe()

	fx.monitor = NewReminderMonitor(ReminderMonitorParams{
		Location:      fx.location,
		Persistence:   fx.persistence,
		Auth:          fx.auth,
		ProductRepo:   fx.productRepo,
		Local:         newMemoryLocalStore(),
		Publisher:     fx.publisher,
		Notifications: mockSvc.NewMockNotificationService(t),
		Clock:         clk,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*reminderMonitor)
	t.Cleanup(fx.monitor.Stop)

	return fx
}

// load refreshes the monitor with the given reminders and notifications enabled.
func (fx reminderMonitorFixtures) load(t *testing.T, reminders ...*entity.ProductReminder) {
	prefs := entity.DefaultPreferences()
	fx.persistence.EXPECT().LoadPreferences(mock.Anything).Return(&prefs, nil).Once()
	fx.persistence.EXPECT().LoadReminders(mock.Anything).Return(reminders, nil).Once()

	require.NoError(t, fx.monitor.Refresh(context.Background()))
}

func (fx reminderMonitorFixtures) expectUserAt(lat, lng float64) {
	fx.location.EXPECT().GetLocation(mock.Anything, false).
		Return(&entity.LocationFix{Lat: lat, Lng: lng, AccuracyMeters: 10}, nil).Maybe()
}

func (fx reminderMonitorFixtures) expectProducts(products ...*entity.ProductAvailability) {
	fx.productRepo.EXPECT().FindAvailableForReminders(mock.Anything, []string{"milk"}, []uuid.UUID(nil)).
		Return(products, nil).Maybe()
}

func TestReminderMonitor_Check_RaisesOncePerSession(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)

	fx.store.EXPECT().MarkNotified(mock.Anything, fx.milk.ID, fx.clock.Now()).Return(nil).Once()
	fx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.MatchedBy(func(e *entity.ReminderMatchedEvent) bool {
		return e.ReminderID == fx.milk.ID && e.SearchTerm == "Milk"
	})).Return(nil).Once()

	raised, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)

	notification := raised[0]
	assert.Equal(t, entity.NotificationKey(fx.milk.ID, fx.product.ProductID, fx.product.StoreID), notification.ID)
	assert.Equal(t, `A store near you now has "Whole Milk 1L" you searched for earlier.`, notification.Message)
	assert.Equal(t, entity.StoreProductTarget(fx.product.StoreID, fx.product.ProductID), notification.Target)
	assert.InDelta(t, 3000, notification.DistanceMeters, 30)

	require.Len(t, fx.monitor.Notifications(), 1)
	require.NotNil(t, fx.monitor.Reminders()[0].NotifiedAt)

	// Within the cooldown nothing is raised.
	raised, err = fx.monitor.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, raised)

	// After the cooldown the same match is still suppressed for this session.
	fx.clock.Add(24*time.Hour + time.Second)
	raised, err = fx.monitor.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, raised)
}

func TestReminderMonitor_Check_SkipsFarProducts(t *testing.T) {
	fx := createTestReminderMonitor(t)

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat-0.03, storeLng)
	fx.expectProducts(fx.product)

	raised, err := fx.monitor.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raised)
	assert.Empty(t, fx.monitor.Notifications())
}

func TestReminderMonitor_Check_RecentlyNotifiedReminderSkipped(t *testing.T) {
	fx := createTestReminderMonitor(t)

	notifiedAt := fx.clock.Now().Add(-23 * time.Hour)
	fx.milk.NotifiedAt = &notifiedAt
	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)

	raised, err := fx.monitor.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raised)
}

func TestReminderMonitor_Check_StoreConstraint(t *testing.T) {
	fx := createTestReminderMonitor(t)

	otherStore := uuid.New()
	fx.milk.StoreID = &otherStore
	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)

	raised, err := fx.monitor.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raised)
}

func TestReminderMonitor_Refresh_NotificationsDisabled(t *testing.T) {
	fx := createTestReminderMonitor(t)

	fx.persistence.EXPECT().LoadPreferences(mock.Anything).
		Return(&entity.Preferences{NotifyFailedSearches: false}, nil).Once()

	require.NoError(t, fx.monitor.Refresh(context.Background()))
	assert.Empty(t, fx.monitor.Reminders())

	raised, err := fx.monitor.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raised)
	fx.location.AssertNotCalled(t, "GetLocation", mock.Anything, mock.Anything)
}

func TestReminderMonitor_Refresh_KeepsPendingOnly(t *testing.T) {
	fx := createTestReminderMonitor(t)

	dismissedAt := fx.clock.Now()
	fx.load(t, fx.milk, &entity.ProductReminder{ID: uuid.New(), SearchTerm: "eggs", IsActive: false, DismissedAt: &dismissedAt})

	reminders := fx.monitor.Reminders()
	require.Len(t, reminders, 1)
	assert.Equal(t, fx.milk.ID, reminders[0].ID)
}

func TestReminderMonitor_View(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)
	fx.store.EXPECT().MarkNotified(mock.Anything, fx.milk.ID, mock.Anything).Return(nil).Twice()
	fx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.Anything).Return(nil).Once()

	raised, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)

	fx.clock.Add(3 * time.Second)
	target, err := fx.monitor.View(ctx, raised[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "/store/"+fx.product.StoreID.String()+"?product="+fx.product.ProductID.String(), target)
	assert.Empty(t, fx.monitor.Notifications())

	_, err = fx.monitor.View(ctx, raised[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestReminderMonitor_Acknowledge(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)
	fx.store.EXPECT().MarkNotified(mock.Anything, fx.milk.ID, mock.Anything).Return(nil).Twice()
	fx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.Anything).Return(nil).Once()

	raised, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)

	require.NoError(t, fx.monitor.Acknowledge(ctx, raised[0].ID))
	assert.ErrorIs(t, fx.monitor.Acknowledge(ctx, raised[0].ID), domainerrors.ErrNotificationNotFound)
}

func TestReminderMonitor_NotificationExpires(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)
	fx.store.EXPECT().MarkNotified(mock.Anything, fx.milk.ID, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.Anything).Return(nil).Once()

	raised, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)

	fx.clock.Add(10 * time.Second)
	assert.Empty(t, fx.monitor.Notifications())
	assert.ErrorIs(t, fx.monitor.Acknowledge(ctx, raised[0].ID), domainerrors.ErrNotificationNotFound)
}

func TestReminderMonitor_Dismiss(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.store.EXPECT().Dismiss(ctx, fx.milk.ID, fx.clock.Now()).Return(nil).Once()

	require.NoError(t, fx.monitor.Dismiss(ctx, fx.milk.ID))
	assert.Empty(t, fx.monitor.Reminders())

	missing := uuid.New()
	fx.store.EXPECT().Dismiss(ctx, missing, mock.Anything).Return(repository.ErrReminderNotFound).Once()
	assert.ErrorIs(t, fx.monitor.Dismiss(ctx, missing), domainerrors.ErrReminderNotFound)
}

func TestReminderMonitor_ClearAll(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.store.EXPECT().Clear(ctx, fx.clock.Now()).Return(nil).Once()

	require.NoError(t, fx.monitor.ClearAll(ctx))
	assert.Empty(t, fx.monitor.Reminders())
	assert.Empty(t, fx.monitor.Notifications())
}

func TestReminderMonitor_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		term        string
		wantCreated bool
		wantErr     error
	}{
		{name: "pending reminder with same term is reused", term: "  milk ", wantCreated: false},
		{name: "new term is saved", term: "oat milk", wantCreated: true},
		{name: "blank term is rejected", term: "   ", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestReminderMonitor(t)
			ctx := context.Background()
			fx.load(t, fx.milk)

			if tt.wantErr == nil {
				fx.store.EXPECT().LoadReminders(ctx).Return([]*entity.ProductReminder{fx.milk}, nil).Once()
			}
			if tt.wantCreated {
				fx.store.EXPECT().AddReminder(ctx, mock.MatchedBy(func(r *entity.ProductReminder) bool {
					return r.SearchTerm == "oat milk" && r.IsActive && r.CreatedAt.Equal(fx.clock.Now())
				})).Return(nil).Once()
			}

			reminder, created, err := fx.monitor.Create(ctx, &usecase.CreateReminderInput{SearchTerm: tt.term})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			if tt.wantCreated {
				assert.Len(t, fx.monitor.Reminders(), 2)
			} else {
				assert.Equal(t, fx.milk.ID, reminder.ID)
				assert.Len(t, fx.monitor.Reminders(), 1)
			}
		})
	}
}

func TestReminderMonitor_AuthChangeClearsNotifications(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.expectUserAt(storeLat, storeLng)
	fx.expectProducts(fx.product)
	fx.store.EXPECT().MarkNotified(mock.Anything, fx.milk.ID, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, fx.monitor.Notifications(), 1)

	userID := uuid.New()
	fx.persistence.EXPECT().LoadPreferences(mock.Anything).Return(ptr(entity.DefaultPreferences()), nil).Once()
	fx.persistence.EXPECT().LoadReminders(mock.Anything).Return(nil, nil).Once()

	fx.auth.Set(ctx, entity.Session{UserID: &userID})

	assert.Empty(t, fx.monitor.Notifications())
	assert.Empty(t, fx.monitor.Reminders())
}

func TestReminderMonitor_Check_SkipsOverlappingTick(t *testing.T) {
	fx := createTestReminderMonitor(t)
	ctx := context.Background()

	fx.load(t, fx.milk)
	fx.location.EXPECT().GetLocation(mock.Anything, false).
		Return(&entity.LocationFix{Lat: storeLat - 0.03, Lng: storeLng, AccuracyMeters: 10}, nil).Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.productRepo.EXPECT().FindAvailableForReminders(mock.Anything, []string{"milk"}, []uuid.UUID(nil)).
		RunAndReturn(func(context.Context, []string, []uuid.UUID) ([]*entity.ProductAvailability, error) {
			close(entered)
			<-release

			return []*entity.ProductAvailability{fx.product}, nil
		}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		raised, err := fx.monitor.Check(ctx)
		assert.NoError(t, err)
		assert.Empty(t, raised)
	}()
	<-entered

	// The first tick is still querying products; this one returns at once.
	raised, err := fx.monitor.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, raised)

	close(release)
	<-done
}
