// Package cache amortizes metadata source calls across repeated requests
// while guaranteeing freshness relative to presence: a player's entries
// are evicted when that player leaves.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"presence-lab/contract"
	"presence-lab/domain"
	"presence-lab/domain/avatar"
	"presence-lab/errors"
	"presence-lab/observability"
	"presence-lab/repositories"
	"presence-lab/runtime"
)

// flight is one in-progress fetch. Waiters block on done and then read
// value/err; both are written exactly once, before done is closed.
type flight[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Cache deduplicates and stores per-player metadata.
//
// The profile and avatar slots are independent: each has its own flight
// table and its own repository key, so a failure in one never blocks or
// invalidates the other. Per slot there is at most one in-flight fetch
// per player; every concurrent requester observes that fetch's result.
//
// Failed fetches are not memorized: the flight is dropped on completion,
// so the next request for the same player starts over from scratch.
type Cache struct {
	mu           sync.Mutex
	log          *slog.Logger
	source       contract.MetadataSource
	store        *repositories.Metadata
	monitor      *observability.Monitor
	fetchTimeout time.Duration

	profiles map[domain.PlayerID]*flight[domain.Profile]
	avatars  map[domain.PlayerID]*flight[avatar.Set]
}

// New builds a cache over source with store as its Ready-value backend.
// monitor may be nil.
func New(log *slog.Logger, source contract.MetadataSource, store *repositories.Metadata,
	monitor *observability.Monitor, fetchTimeout time.Duration) *Cache {
	return &Cache{
		log:          log,
		source:       source,
		store:        store,
		monitor:      monitor,
		fetchTimeout: fetchTimeout,
		profiles:     make(map[domain.PlayerID]*flight[domain.Profile]),
		avatars:      make(map[domain.PlayerID]*flight[avatar.Set]),
	}
}

// BindTo subscribes the cache to a registry's leave event. Invalidation
// runs synchronously inside the leave callback, so once a leave has been
// fully dispatched no stale entry for that player survives. Returns the
// unsubscribe func.
func (c *Cache) BindTo(registry *runtime.Registry) func() {
	return registry.OnLeave(func(p *domain.Player, _ domain.LeaveReason) {
		c.Invalidate(p.ID)
	})
}

// Invalidate evicts both metadata slots for a player, unconditionally.
// An in-flight fetch keeps serving its current waiters but its result is
// no longer stored.
func (c *Cache) Invalidate(id domain.PlayerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.profiles, id)
	delete(c.avatars, id)
	if err := c.store.Delete(id); err != nil {
		c.log.Error("Cache eviction failed", "player", id, "error", err)
	}
}

// GetProfile returns the player's profile, fetching it at most once no
// matter how many callers ask concurrently.
func (c *Cache) GetProfile(ctx context.Context, id domain.PlayerID) (domain.Profile, error) {
	if p, ok := c.storedProfile(id); ok {
		c.monitor.IncrProfileHit()
		return p, nil
	}

	c.mu.Lock()
	if f, ok := c.profiles[id]; ok {
		c.mu.Unlock()
		c.monitor.IncrProfileHit()
		return await(ctx, f)
	}
	// A fetch may have completed between the fast path and the lock.
	if p, ok := c.storedProfile(id); ok {
		c.mu.Unlock()
		c.monitor.IncrProfileHit()
		return p, nil
	}
	f := &flight[domain.Profile]{done: make(chan struct{})}
	c.profiles[id] = f
	c.mu.Unlock()

	go c.fetchProfile(id, f)
	return await(ctx, f)
}

// GetAvatars returns the player's full variant grid, fetched at most
// once concurrently. Cells whose sub-fetch failed carry Failed=true;
// sibling cells stay usable.
func (c *Cache) GetAvatars(ctx context.Context, id domain.PlayerID) (avatar.Set, error) {
	if set, ok := c.storedAvatars(id); ok {
		c.monitor.IncrAvatarHit()
		return set, nil
	}

	c.mu.Lock()
	if f, ok := c.avatars[id]; ok {
		c.mu.Unlock()
		c.monitor.IncrAvatarHit()
		return await(ctx, f)
	}
	if set, ok := c.storedAvatars(id); ok {
		c.mu.Unlock()
		c.monitor.IncrAvatarHit()
		return set, nil
	}
	f := &flight[avatar.Set]{done: make(chan struct{})}
	c.avatars[id] = f
	c.mu.Unlock()

	go c.fetchAvatars(id, f)
	return await(ctx, f)
}

// GetInfo composes both slots. The halves are requested in parallel and
// each follows its own dedup rule; a failure in one leaves the other's
// data in place.
func (c *Cache) GetInfo(ctx context.Context, id domain.PlayerID) (domain.PlayerInfo, error) {
	var wg sync.WaitGroup
	var info domain.PlayerInfo
	var pErr, aErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		info.Profile, pErr = c.GetProfile(ctx, id)
	}()
	go func() {
		defer wg.Done()
		info.Avatars, aErr = c.GetAvatars(ctx, id)
	}()
	wg.Wait()

	switch {
	case pErr != nil && aErr != nil:
		return info, fmt.Errorf("%w; %w", pErr, aErr)
	case pErr != nil:
		return info, pErr
	case aErr != nil:
		return info, aErr
	}
	return info, nil
}

// await parks the caller until the flight resolves. The caller's context
// only abandons the wait; the fetch itself is never cancelled, it is
// shared by every other waiter.
func await[T any](ctx context.Context, f *flight[T]) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (c *Cache) storedProfile(id domain.PlayerID) (domain.Profile, bool) {
	p, ok, err := c.store.GetProfile(id)
	if err != nil {
		c.log.Error("Profile store read failed", "player", id, "error", err)
		return domain.Profile{}, false
	}
	return p, ok
}

func (c *Cache) storedAvatars(id domain.PlayerID) (avatar.Set, bool) {
	set, ok, err := c.store.GetAvatars(id)
	if err != nil {
		c.log.Error("Avatar store read failed", "player", id, "error", err)
		return nil, false
	}
	return set, ok
}

// fetchProfile resolves one profile flight. Runs on its own goroutine
// with its own deadline so no single waiter's context controls it.
func (c *Cache) fetchProfile(id domain.PlayerID, f *flight[domain.Profile]) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	c.monitor.IncrProfileFetch()
	p, err := c.source.FetchProfile(ctx, int64(id))
	if err != nil {
		c.monitor.IncrFetchFailure()
		f.err = fmt.Errorf("%w: profile %d: %w", errors.ErrFetchFailed, id, err)
	} else {
		f.value = p
	}

	c.settleProfile(id, f)
	close(f.done)
}

// settleProfile retires the flight. The Ready value is stored only while
// the flight is still current: an Invalidate racing the fetch wins, the
// late result is dropped instead of resurrecting an evicted entry.
func (c *Cache) settleProfile(id domain.PlayerID, f *flight[domain.Profile]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.profiles[id] != f {
		return
	}
	delete(c.profiles, id)
	if f.err == nil {
		if err := c.store.PutProfile(id, f.value); err != nil {
			c.log.Error("Profile store write failed", "player", id, "error", err)
		}
	}
}

func (c *Cache) fetchAvatars(id domain.PlayerID, f *flight[avatar.Set]) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	c.monitor.IncrAvatarFetch()
	set, err := c.resolveAvatars(ctx, id)
	if err != nil {
		c.monitor.IncrFetchFailure()
		f.err = fmt.Errorf("%w: avatars %d: %w", errors.ErrFetchFailed, id, err)
	} else {
		f.value = set
	}

	c.settleAvatars(id, f)
	close(f.done)
}

func (c *Cache) settleAvatars(id domain.PlayerID, f *flight[avatar.Set]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.avatars[id] != f {
		return
	}
	delete(c.avatars, id)
	if f.err == nil {
		if err := c.store.PutAvatars(id, f.value); err != nil {
			c.log.Error("Avatar store write failed", "player", id, "error", err)
		}
	}
}

// resolveAvatars requests the full kind x size grid. A batching source
// gets one round trip; otherwise every cell is fetched concurrently and
// the grid is assembled once all complete. A cell whose sub-fetch failed
// is marked Failed; the slot only fails wholesale when the batch call
// errors or no cell resolved at all.
func (c *Cache) resolveAvatars(ctx context.Context, id domain.PlayerID) (avatar.Set, error) {
	reqs := avatar.AllRequests()

	if batcher, ok := c.source.(contract.BatchMetadataSource); ok {
		return batcher.FetchAvatarBatch(ctx, int64(id), reqs)
	}

	type cell struct {
		req avatar.Request
		img avatar.Image
		err error
	}
	cells := make([]cell, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := c.source.FetchAvatar(ctx, int64(id), req)
			cells[i] = cell{req: req, img: img, err: err}
		}()
	}
	wg.Wait()

	set := avatar.NewSet()
	failed := 0
	for _, cl := range cells {
		if cl.err != nil {
			c.log.Warn("Avatar cell fetch failed",
				"player", id, "kind", cl.req.Kind, "size", cl.req.Size, "error", cl.err)
			set.Put(cl.req, avatar.Image{Failed: true})
			failed++
			continue
		}
		set.Put(cl.req, cl.img)
	}

	if failed == len(reqs) {
		return nil, fmt.Errorf("all %d avatar cells failed", failed)
	}
	return set, nil
}
