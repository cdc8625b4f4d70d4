package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mockUsecase "shopradar/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMonitorRunner_Serve_StartsEveryMonitor(t *testing.T) {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	reminder := mockUsecase.NewMockReminderUsecase(t)

	proximity.EXPECT().Start(mock.Anything).Return(nil).Once()
	reminder.EXPECT().Start(mock.Anything).Return(nil).Once()

	runner := newMonitorRunner(slog.New(slog.NewTextHandler(io.Discard, nil)),
		namedMonitor{name: "proximity", monitor: proximity},
		namedMonitor{name: "reminder", monitor: reminder},
	)

	require.NoError(t, runner.Serve(context.Background()))
}

func TestMonitorRunner_Serve_FailedMonitorDoesNotStopOthers(t *testing.T) {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	reminder := mockUsecase.NewMockReminderUsecase(t)

	proximity.EXPECT().Start(mock.Anything).Return(errors.New("stores unavailable")).Once()
	reminder.EXPECT().Start(mock.Anything).Return(nil).Once()

	runner := newMonitorRunner(slog.New(slog.NewTextHandler(io.Discard, nil)),
		namedMonitor{name: "proximity", monitor: proximity},
		namedMonitor{name: "reminder", monitor: reminder},
	)

	assert.NoError(t, runner.Serve(context.Background()))
}

func TestMonitorRunner_Stop_ReverseOrder(t *testing.T) {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	reminder := mockUsecase.NewMockReminderUsecase(t)

	var stopped []string
	proximity.EXPECT().Stop().Run(func() { stopped = append(stopped, "proximity") }).Once()
	reminder.EXPECT().Stop().Run(func() { stopped = append(stopped, "reminder") }).Once()

	runner := newMonitorRunner(slog.New(slog.NewTextHandler(io.Discard, nil)),
		namedMonitor{name: "proximity", monitor: proximity},
		namedMonitor{name: "reminder", monitor: reminder},
	)

	require.NoError(t, runner.stop(context.Background()))
	assert.Equal(t, []string{"reminder", "proximity"}, stopped)
}

func TestMonitorRunner_Serve_SeparateStartBudgets(t *testing.T) {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	reminder := mockUsecase.NewMockReminderUsecase(t)

	var proximityCtx context.Context
	proximity.EXPECT().Start(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		proximityCtx = ctx

		return nil
	}).Once()
	reminder.EXPECT().Start(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		// The previous budget is released before the next monitor starts.
		assert.ErrorIs(t, proximityCtx.Err(), context.Canceled)
		assert.NoError(t, ctx.Err())

		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		return nil
	}).Once()

	runner := newMonitorRunner(slog.New(slog.NewTextHandler(io.Discard, nil)),
		namedMonitor{name: "proximity", monitor: proximity},
		namedMonitor{name: "reminder", monitor: reminder},
	)

	require.NoError(t, runner.Serve(context.Background()))
}
