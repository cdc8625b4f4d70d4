// Package scheduler runs periodic jobs on an injectable clock.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Job is one unit of periodic work.
type Job func(ctx context.Context)

// Loop runs a job on a fixed interval until stopped.
type Loop struct {
	clock     clock.Clock
	interval  time.Duration
	job       Job
	immediate bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithImmediate runs the job once right after Start, before the first tick.
func WithImmediate() Option {
	return func(l *Loop) {
		l.immediate = true
	}
}

// New creates a loop running job every interval on clk.
func New(clk clock.Clock, interval time.Duration, job Job, opts ...Option) *Loop {
	l := &Loop{
		clock:    clk,
		interval: interval,
		job:      job,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start launches the loop. The loop lives until Stop is called or ctx is done.
// Starting a running loop does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	// The ticker is created before the goroutine so a mock clock advanced
	// right after Start still fires it.
	ticker := l.clock.Ticker(l.interval)
	done := make(chan struct{})

	l.cancel = cancel
	l.done = done
	l.running = true

	go l.run(loopCtx, ticker, done)
}

func (l *Loop) run(ctx context.Context, ticker *clock.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	if l.immediate {
		l.job(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			l.job(ctx)
		}
	}
}

// Stop cancels the loop and waits for an in-flight job to return.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()

		return
	}
	cancel, done := l.cancel, l.done
	l.running = false
	l.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the loop has been started and not stopped.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.running
}
