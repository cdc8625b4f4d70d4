package handler

import (
	"net/http"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReminderHandler_CreateReminder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{name: "new reminder", created: true, wantStatus: http.StatusCreated},
		{name: "existing pending reminder", created: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reminderUC := mockUsecase.NewMockReminderUsecase(t)
			h := NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC})

			reminder := &entity.ProductReminder{
				ID:         uuid.New(),
				SearchTerm: "oat milk",
				CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				IsActive:   true,
			}
			reminderUC.EXPECT().
				Create(mock.Anything, &usecase.CreateReminderInput{SearchTerm: "oat milk"}).
				Return(reminder, tt.created, nil).
				Once()

			c, rec := newContext(http.MethodPost, "/api/v1/reminders", `{"search_term":"oat milk"}`)
			require.NoError(t, h.CreateReminder(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got entity.ProductReminder
			decodeData(t, rec, &got)
			assert.Equal(t, reminder.ID, got.ID)
		})
	}
}

func TestReminderHandler_CreateReminder_MissingTerm(t *testing.T) {
	t.Parallel()

	h := NewReminderHandler(ReminderHandlerParams{ReminderUC: mockUsecase.NewMockReminderUsecase(t)})

	c, rec := newContext(http.MethodPost, "/api/v1/reminders", `{"search_term":""}`)
	require.NoError(t, h.CreateReminder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminderHandler_DismissReminder(t *testing.T) {
	t.Parallel()

	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC})

	known := uuid.New()
	unknown := uuid.New()
	reminderUC.EXPECT().Dismiss(mock.Anything, known).Return(nil).Once()
	reminderUC.EXPECT().Dismiss(mock.Anything, unknown).Return(domainerrors.ErrReminderNotFound).Once()

	c, rec := newContext(http.MethodDelete, "/api/v1/reminders/"+known.String(), "")
	require.NoError(t, h.DismissReminder(withParam(c, "id", known.String())))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newContext(http.MethodDelete, "/api/v1/reminders/"+unknown.String(), "")
	require.NoError(t, h.DismissReminder(withParam(c, "id", unknown.String())))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REMINDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestReminderHandler_ViewNotification(t *testing.T) {
	t.Parallel()

	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC})

	storeID := uuid.New()
	productID := uuid.New()
	target := entity.StoreProductTarget(storeID, productID)
	reminderUC.EXPECT().View(mock.Anything, "n-1").Return(target, nil).Once()
	reminderUC.EXPECT().View(mock.Anything, "n-2").Return("", domainerrors.ErrNotificationNotFound).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/reminders/notifications/n-1/view", "")
	require.NoError(t, h.ViewNotification(withParam(c, "id", "n-1")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got TargetResponse
	decodeData(t, rec, &got)
	assert.Equal(t, target, got.Target)

	c, rec = newContext(http.MethodPost, "/api/v1/reminders/notifications/n-2/view", "")
	require.NoError(t, h.ViewNotification(withParam(c, "id", "n-2")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
