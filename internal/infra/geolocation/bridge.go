// Package geolocation provides the platform position sources.
package geolocation

import (
	"context"
	"sync"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
)

type reading struct {
	fix *entity.LocationFix
	err error
}

// Bridge is the position source fed by the native shell. The shell watches the
// device position and pushes every reading; a request is answered by the first
// reading pushed after it.
type Bridge struct {
	mu        sync.Mutex
	available bool
	waiters   []chan reading
}

// NewBridge creates a bridge. The device is assumed to have a position capability
// until the shell reports otherwise.
func NewBridge() *Bridge {
	return &Bridge{available: true}
}

// Available implements service.PositionProvider.
func (b *Bridge) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.available
}

// SetAvailable records whether the device has a position capability.
func (b *Bridge) SetAvailable(available bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.available = available
}

// CurrentPosition waits for the next reading pushed by the shell.
func (b *Bridge) CurrentPosition(ctx context.Context) (*entity.LocationFix, error) {
	ch := make(chan reading, 1)

	b.mu.Lock()
	b.waiters = append(b.waiters, ch)
	b.mu.Unlock()

	select {
	case r := <-ch:
		return r.fix, r.err
	case <-ctx.Done():
		b.remove(ch)

		return nil, domainerrors.NewPositionError(domainerrors.PositionTimeout, "no reading from the device before the deadline")
	}
}

// Waiting returns the number of requests waiting for a reading.
func (b *Bridge) Waiting() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.waiters)
}

// Push answers every waiting request with fix. It returns the number of requests answered.
func (b *Bridge) Push(fix entity.LocationFix) int {
	return b.deliver(reading{fix: &fix})
}

// PushError answers every waiting request with a platform failure.
func (b *Bridge) PushError(kind domainerrors.PositionErrorKind, message string) int {
	return b.deliver(reading{err: domainerrors.NewPositionError(kind, message)})
}

func (b *Bridge) deliver(r reading) int {
	b.mu.Lock()
	waiters := b.waiters
	b.waiters = nil
	b.mu.Unlock()

	for _, ch := range waiters {
		if r.fix != nil {
			fix := *r.fix
			ch <- reading{fix: &fix}

			continue
		}
		ch <- r
	}

	return len(waiters)
}

func (b *Bridge) remove(ch chan reading) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, waiter := range b.waiters {
		if waiter == ch {
			b.waiters = append(b.waiters[:i], b.waiters[i+1:]...)

			return
		}
	}
}
