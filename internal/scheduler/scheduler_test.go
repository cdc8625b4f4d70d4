package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestLoop_RunsOnEveryTick(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32

	loop := New(mock, 10*time.Second, func(context.Context) {
		calls.Add(1)
	})
	loop.Start(context.Background())
	defer loop.Stop()

	assert.Equal(t, int32(0), calls.Load())

	mock.Add(10 * time.Second)
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	mock.Add(10 * time.Second)
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
}

func TestLoop_Immediate(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32

	loop := New(mock, time.Minute, func(context.Context) {
		calls.Add(1)
	}, WithImmediate())
	loop.Start(context.Background())
	defer loop.Stop()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestLoop_StopPreventsFurtherRuns(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32

	loop := New(mock, time.Second, func(context.Context) {
		calls.Add(1)
	})
	loop.Start(context.Background())
	assert.True(t, loop.Running())

	loop.Stop()
	assert.False(t, loop.Running())

	mock.Add(5 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Stopping twice is safe.
	loop.Stop()
}

func TestLoop_ContextCancellation(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	loop := New(mock, time.Second, func(context.Context) {
		calls.Add(1)
	})
	loop.Start(ctx)
	cancel()

	time.Sleep(10 * time.Millisecond)
	mock.Add(3 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	loop.Stop()
}

func TestLoop_StartTwiceIsNoop(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32

	loop := New(mock, time.Second, func(context.Context) {
		calls.Add(1)
	})
	loop.Start(context.Background())
	loop.Start(context.Background())
	defer loop.Stop()

	mock.Add(time.Second)
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
