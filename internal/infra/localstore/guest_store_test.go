package localstore

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestGuestReminderStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	local := newMemStore(t)
	store := NewGuestReminderStore(local)

	reminders, err := store.LoadReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)

	milk := &entity.ProductReminder{ID: uuid.New(), SearchTerm: "milk", IsActive: true, CreatedAt: testNow}
	eggs := &entity.ProductReminder{ID: uuid.New(), SearchTerm: "eggs", IsActive: true, CreatedAt: testNow}
	require.NoError(t, store.AddReminder(ctx, milk))
	require.NoError(t, store.AddReminder(ctx, eggs))

	notifiedAt := testNow.Add(time.Minute)
	require.NoError(t, store.MarkNotified(ctx, milk.ID, notifiedAt))
	require.NoError(t, store.Dismiss(ctx, eggs.ID, notifiedAt))

	reminders, err = store.LoadReminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "milk", reminders[0].SearchTerm)
	require.NotNil(t, reminders[0].NotifiedAt)
	assert.True(t, reminders[0].NotifiedAt.Equal(notifiedAt))
	assert.True(t, reminders[0].IsPending())
	assert.False(t, reminders[1].IsPending())

	err = store.Dismiss(ctx, uuid.New(), notifiedAt)
	assert.True(t, errors.Is(err, repository.ErrReminderNotFound))

	require.NoError(t, store.Clear(ctx, notifiedAt))
	_, err = local.Get(ctx, constants.LocalKeyGuestReminders)
	assert.True(t, errors.Is(err, repository.ErrLocalKeyNotFound))
}

func TestGuestReminderStore_SaveReplacesList(t *testing.T) {
	ctx := context.Background()
	store := NewGuestReminderStore(newMemStore(t))

	require.NoError(t, store.AddReminder(ctx, &entity.ProductReminder{ID: uuid.New(), SearchTerm: "tea"}))
	require.NoError(t, store.SaveReminders(ctx, nil))

	reminders, err := store.LoadReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestGuestReminderStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	local := newMemStore(t)
	require.NoError(t, local.Set(ctx, constants.LocalKeyGuestReminders, []byte("{")))

	_, err := NewGuestReminderStore(local).LoadReminders(ctx)

	assert.Error(t, err)
}

func TestGuestFavoriteStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	local := newMemStore(t)
	store := NewGuestFavoriteStore(local)

	jam := &entity.FavoriteProduct{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Strawberry Jam", Price: 89}
	rice := &entity.FavoriteProduct{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Rice 2kg", Price: 199}
	require.NoError(t, store.AddFavorite(ctx, jam))
	require.NoError(t, store.AddFavorite(ctx, rice))

	err := store.AddFavorite(ctx, &entity.FavoriteProduct{ID: uuid.New(), ProductID: jam.ProductID})
	assert.True(t, errors.Is(err, repository.ErrDuplicateFavorite))

	require.NoError(t, store.RemoveFavorite(ctx, jam.ProductID))
	err = store.RemoveFavorite(ctx, jam.ProductID)
	assert.True(t, errors.Is(err, repository.ErrFavoriteNotFound))

	favorites, err := store.LoadFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Rice 2kg", favorites[0].ProductName)

	require.NoError(t, store.Clear(ctx))
	favorites, err = store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestGuestFavoriteStore_SaveFavorites(t *testing.T) {
	ctx := context.Background()
	store := NewGuestFavoriteStore(newMemStore(t))
	favorites := []*entity.FavoriteProduct{
		{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Oolong Tea"},
	}

	require.NoError(t, store.SaveFavorites(ctx, favorites))

	got, err := store.LoadFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, favorites[0].ProductID, got[0].ProductID)
}
