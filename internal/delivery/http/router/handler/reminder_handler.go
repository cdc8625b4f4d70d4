package handler

import (
	"net/http"

	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
}

// ReminderHandler exposes the product reminder monitor.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{reminderUC: params.ReminderUC}
}

// TargetResponse is where the shell navigates after a notification is opened.
type TargetResponse struct {
	Target string `json:"target"`
}

// ListReminders returns the pending reminders.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	return response.OK(c, h.reminderUC.Reminders())
}

// CreateReminder saves a reminder. An existing pending reminder with the same
// term is returned with 200 instead of 201.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req usecase.CreateReminderInput
	if ok, err := bind(c, &req); !ok {
		return err
	}

	reminder, created, err := h.reminderUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, reminder)
}

// DismissReminder permanently deactivates a reminder.
func (h *ReminderHandler) DismissReminder(c echo.Context) error {
	reminderID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.reminderUC.Dismiss(c.Request().Context(), reminderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearReminders removes every reminder.
func (h *ReminderHandler) ClearReminders(c echo.Context) error {
	if err := h.reminderUC.ClearAll(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Check runs one poll tick now and returns the notifications it raised.
func (h *ReminderHandler) Check(c echo.Context) error {
	raised, err := h.reminderUC.Check(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, raised)
}

// Refresh reloads the reminders and the notification preference.
func (h *ReminderHandler) Refresh(c echo.Context) error {
	if err := h.reminderUC.Refresh(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, h.reminderUC.Reminders())
}

// ListNotifications returns the notifications still displayed.
func (h *ReminderHandler) ListNotifications(c echo.Context) error {
	return response.OK(c, h.reminderUC.Notifications())
}

// ViewNotification acknowledges a notification and returns its target.
func (h *ReminderHandler) ViewNotification(c echo.Context) error {
	target, err := h.reminderUC.View(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, TargetResponse{Target: target})
}

// AcknowledgeNotification handles a notification that was closed without action.
func (h *ReminderHandler) AcknowledgeNotification(c echo.Context) error {
	if err := h.reminderUC.Acknowledge(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
