// Package runtime handles presence bookkeeping and lifecycle fan-out.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"presence-lab/errors"
)

// Handle identifies one subscription. Its only valid use is removal.
type Handle uint64

type subscriber[T any] struct {
	id Handle
	fn func(T)
}

// Callbacks is an ordered collection of subscribers for one event type.
//
// Dispatch runs each subscriber on its own goroutine and never waits for
// completion, so a slow or panicking subscriber cannot stall the caller
// or its siblings. DispatchWait is the single blocking variant, reserved
// for leave sequencing and the shutdown drain.
//
// Callbacks is safe for concurrent use by multiple goroutines.
type Callbacks[T any] struct {
	mu          sync.Mutex
	log         *slog.Logger
	next        Handle
	subscribers []subscriber[T]
}

func NewCallbacks[T any](log *slog.Logger) *Callbacks[T] {
	return &Callbacks[T]{log: log}
}

// Add registers fn and returns its removal handle. Never fails.
func (c *Callbacks[T]) Add(fn func(T)) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	c.subscribers = append(c.subscribers, subscriber[T]{id: c.next, fn: fn})
	return c.next
}

// Remove unregisters the subscription. Removing an unknown or already
// removed handle is a no-op. A dispatch already in flight keeps its own
// snapshot; removal only affects dispatches that start afterwards.
func (c *Callbacks[T]) Remove(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subscribers {
		if sub.id == h {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			return
		}
	}
}

func (c *Callbacks[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}

// Dispatch invokes every currently registered subscriber with v, each on
// its own goroutine, in registration order. The caller is never blocked.
func (c *Callbacks[T]) Dispatch(v T) {
	for _, sub := range c.snapshot() {
		go c.invoke(sub.fn, v)
	}
}

// DispatchWait fans out like Dispatch but blocks until every subscriber
// has returned. Reserved for leave removal sequencing and the drain.
func (c *Callbacks[T]) DispatchWait(v T) {
	var wg sync.WaitGroup
	for _, sub := range c.snapshot() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.invoke(sub.fn, v)
		}()
	}
	wg.Wait()
}

func (c *Callbacks[T]) snapshot() []subscriber[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := make([]subscriber[T], len(c.subscribers))
	copy(snap, c.subscribers)
	return snap
}

// invoke isolates one subscriber. A panic is contained here and logged
// so sibling subscribers and the dispatcher stay unaffected.
func (c *Callbacks[T]) invoke(fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Subscriber failed during dispatch",
				"error", fmt.Errorf("%w: %v", errors.ErrSubscriberPanic, r))
		}
	}()
	fn(v)
}
