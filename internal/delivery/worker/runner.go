// Package worker runs the background monitors of the agent.
package worker

import (
	"context"
	"log/slog"

	"shopradar/internal/delivery"
	"shopradar/internal/domain/lifecycle"
	"shopradar/internal/usecase"

	"go.uber.org/fx"
)

// Monitor is a polling loop started with the agent.
type Monitor interface {
	Start(ctx context.Context) error
	Stop()
}

type namedMonitor struct {
	name    string
	monitor Monitor
}

type monitorRunner struct {
	monitors []namedMonitor
	logger   *slog.Logger
}

// RunnerParams holds dependencies for the monitor runner
type RunnerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Logger    *slog.Logger
	Proximity usecase.ProximityUsecase
	Reminder  usecase.ReminderUsecase
}

// NewRunner creates the delivery that starts the proximity and reminder monitors.
func NewRunner(params RunnerParams) (delivery.Delivery, error) {
	r := newMonitorRunner(params.Logger,
		namedMonitor{name: "proximity", monitor: params.Proximity},
		namedMonitor{name: "reminder", monitor: params.Reminder},
	)

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func newMonitorRunner(logger *slog.Logger, monitors ...namedMonitor) *monitorRunner {
	return &monitorRunner{monitors: monitors, logger: logger}
}

// Serve starts every monitor, each within its own start budget. A monitor that
// fails to start stays inactive; the agent keeps running without it.
func (r *monitorRunner) Serve(ctx context.Context) error {
	for _, m := range r.monitors {
		if err := r.start(ctx, m); err != nil {
			r.logger.Error("[Worker] monitor failed to start",
				slog.String("monitor", m.name),
				slog.Any("error", err),
			)

			continue
		}
		r.logger.Info("[Worker] monitor started", slog.String("monitor", m.name))
	}

	return nil
}

func (r *monitorRunner) start(ctx context.Context, m namedMonitor) error {
	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return m.monitor.Start(startCtx)
}

// stop stops the monitors in reverse start order.
func (r *monitorRunner) stop(_ context.Context) error {
	for i := len(r.monitors) - 1; i >= 0; i-- {
		r.monitors[i].monitor.Stop()
	}
	r.logger.Info("[Worker] monitors stopped")

	return nil
}
