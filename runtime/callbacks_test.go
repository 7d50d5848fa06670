package runtime

import (
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestCallbacks_DispatchWait_InvokesInRegistrationOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[int](log)

	// Given three subscribers recording what they received
	var got [3]int32
	callbacks.Add(func(v int) { atomic.StoreInt32(&got[0], int32(v)) })
	callbacks.Add(func(v int) { atomic.StoreInt32(&got[1], int32(v)) })
	callbacks.Add(func(v int) { atomic.StoreInt32(&got[2], int32(v)) })

	// When dispatching synchronously
	callbacks.DispatchWait(42)

	// Then every subscriber saw the value
	for i := range got {
		req.Equal(int32(42), atomic.LoadInt32(&got[i]))
	}
}

func TestCallbacks_Remove_IsIdempotent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[string](log)

	var calls atomic.Int32
	h := callbacks.Add(func(string) { calls.Add(1) })

	// When removing twice, plus an unknown handle
	callbacks.Remove(h)
	callbacks.Remove(h)
	callbacks.Remove(Handle(999))

	// Then the subscriber is gone and nothing blew up
	callbacks.DispatchWait("hello")
	req.Equal(int32(0), calls.Load())
	req.Equal(0, callbacks.Len())
}

func TestCallbacks_RemoveAfterReturn_SkipsFutureDispatches(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[int](log)

	var calls atomic.Int32
	h := callbacks.Add(func(int) { calls.Add(1) })

	callbacks.DispatchWait(1)
	req.Equal(int32(1), calls.Load())

	// When the subscription is removed
	callbacks.Remove(h)

	// Then a dispatch starting afterwards never invokes it
	callbacks.DispatchWait(2)
	req.Equal(int32(1), calls.Load())
}

func TestCallbacks_RemoveFromInsideCallback(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[int](log)

	// Given a subscriber that unregisters itself during dispatch
	var calls atomic.Int32
	var h Handle
	h = callbacks.Add(func(int) {
		calls.Add(1)
		callbacks.Remove(h)
	})

	// When dispatching twice
	callbacks.DispatchWait(1)
	callbacks.DispatchWait(2)

	// Then only the dispatch in progress at removal time ran it
	req.Equal(int32(1), calls.Load())
}

func TestCallbacks_PanicDoesNotStopSiblings(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[int](log)

	var healthy atomic.Int32
	callbacks.Add(func(int) { panic("subscriber bug") })
	callbacks.Add(func(int) { healthy.Add(1) })
	callbacks.Add(func(int) { healthy.Add(1) })

	// When dispatching, the panic is contained
	req.NotPanics(func() { callbacks.DispatchWait(7) })

	// Then the siblings still ran
	req.Equal(int32(2), healthy.Load())
}

func TestCallbacks_Dispatch_DoesNotBlockCaller(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	callbacks := NewCallbacks[int](log)

	// Given a subscriber stuck until we release it
	release := make(chan struct{})
	done := make(chan struct{})
	callbacks.Add(func(int) {
		<-release
		close(done)
	})

	// When dispatching fire-and-forget
	start := time.Now()
	callbacks.Dispatch(1)

	// Then the caller returned immediately
	req.Less(time.Since(start), 100*time.Millisecond)

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("subscriber never ran")
	}
}
