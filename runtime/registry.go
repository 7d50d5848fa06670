package runtime

import (
	"context"
	"iter"
	"log/slog"
	"sync"

	"presence-lab/domain"
	"presence-lab/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// LeaveEvent carries a departing player together with the reason the
// session provider reported.
type LeaveEvent struct {
	Player *domain.Player
	Reason domain.LeaveReason
}

// Registry is the single source of truth for who is connected right now,
// plus the join/leave fan-out.
//
// Sequencing invariants:
//   - a player is inserted into the snapshot before the join event is
//     dispatched, so join subscribers can already resolve it;
//   - the leave event is dispatched before removal, and removal happens
//     only after every leave subscriber returned, so leave subscribers
//     can still resolve the departing player from inside their callback.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	log     *slog.Logger
	players map[domain.PlayerID]*domain.Player
	order   []domain.PlayerID
	leaving map[domain.PlayerID]struct{}
	rejoins map[domain.PlayerID]*domain.Player

	joined *Callbacks[*domain.Player]
	left   *Callbacks[LeaveEvent]
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:     log,
		players: make(map[domain.PlayerID]*domain.Player),
		leaving: make(map[domain.PlayerID]struct{}),
		rejoins: make(map[domain.PlayerID]*domain.Player),
		joined:  NewCallbacks[*domain.Player](log),
		left:    NewCallbacks[LeaveEvent](log),
	}
}

// OnJoin subscribes fn to the join event and returns its unsubscribe func.
func (r *Registry) OnJoin(fn func(*domain.Player)) func() {
	h := r.joined.Add(fn)
	return func() { r.joined.Remove(h) }
}

// OnLeave subscribes fn to the leave event and returns its unsubscribe func.
func (r *Registry) OnLeave(fn func(*domain.Player, domain.LeaveReason)) func() {
	h := r.left.Add(func(e LeaveEvent) { fn(e.Player, e.Reason) })
	return func() { r.left.Remove(h) }
}

// HandleJoin records a join signal from the session provider.
// A duplicate join for an already connected player is logged and ignored.
// A join arriving while that player's previous departure is still being
// dispatched is a valid reconnect, not a duplicate: it is parked and
// applied (insert plus join dispatch) right after the departure's removal
// completes, preserving signal order.
func (r *Registry) HandleJoin(p *domain.Player) {
	r.mu.Lock()
	if _, ok := r.players[p.ID]; ok {
		if _, departing := r.leaving[p.ID]; departing {
			if _, parked := r.rejoins[p.ID]; parked {
				r.mu.Unlock()
				r.log.Warn("Ignoring join signal", "player", p.ID, "error", errors.ErrAlreadyConnected)
				return
			}
			r.rejoins[p.ID] = p
			r.mu.Unlock()
			r.log.Debug("Parking join until departure completes", "player", p.ID)
			return
		}
		r.mu.Unlock()
		r.log.Warn("Ignoring join signal", "player", p.ID, "error", errors.ErrAlreadyConnected)
		return
	}
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	r.mu.Unlock()

	r.joined.Dispatch(p)
}

// HandleLeave records a leave signal from the session provider.
// The snapshot entry survives until every leave subscriber has run; a
// janitor goroutine performs the removal so the provider's signal path
// never blocks on subscribers. Duplicate leaves are logged and ignored.
func (r *Registry) HandleLeave(p *domain.Player, reason domain.LeaveReason) {
	r.mu.Lock()
	if _, ok := r.players[p.ID]; !ok {
		r.mu.Unlock()
		r.log.Warn("Ignoring leave signal", "player", p.ID, "error", errors.ErrNotConnected)
		return
	}
	if _, ok := r.leaving[p.ID]; ok {
		r.mu.Unlock()
		r.log.Warn("Ignoring leave signal, departure already in progress", "player", p.ID)
		return
	}
	r.leaving[p.ID] = struct{}{}
	r.mu.Unlock()

	go func() {
		r.left.DispatchWait(LeaveEvent{Player: p, Reason: reason})
		r.remove(p.ID)
	}()
}

func (r *Registry) remove(id domain.PlayerID) {
	r.mu.Lock()
	delete(r.players, id)
	delete(r.leaving, id)
	r.order = lo.Without(r.order, id)

	// A reconnect parked during the departure takes effect now.
	p, rejoining := r.rejoins[id]
	if rejoining {
		delete(r.rejoins, id)
		r.players[id] = p
		r.order = append(r.order, id)
	}
	r.mu.Unlock()

	if rejoining {
		r.joined.Dispatch(p)
	}
}

// Lookup resolves a player by numeric id, by exact display name, or by
// handle equality, depending on the key's type. When several connected
// players share a display name, the first match in join order wins; this
// is a best-effort default, not a uniqueness guarantee.
func (r *Registry) Lookup(key any) (*domain.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch k := key.(type) {
	case domain.PlayerID:
		return r.byID(k)
	case int64:
		return r.byID(domain.PlayerID(k))
	case int:
		return r.byID(domain.PlayerID(k))
	case string:
		return r.first(func(p *domain.Player) bool { return p.DisplayName == k })
	case uuid.UUID:
		return r.first(func(p *domain.Player) bool { return p.Handle == k })
	default:
		return nil, false
	}
}

func (r *Registry) byID(id domain.PlayerID) (*domain.Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

func (r *Registry) first(match func(*domain.Player) bool) (*domain.Player, bool) {
	for _, id := range r.order {
		if p, ok := r.players[id]; ok && match(p) {
			return p, true
		}
	}
	return nil, false
}

// Count returns the number of currently connected players. O(1).
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Players returns the connected set in join order, frozen at call time.
func (r *Registry) Players() []*domain.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playersLocked()
}

// All returns a restartable sequence over the connected set. The snapshot
// is taken when All is called; registry mutations during iteration do not
// affect an in-progress sequence.
func (r *Registry) All() iter.Seq[*domain.Player] {
	snap := r.Players()
	return func(yield func(*domain.Player) bool) {
		for _, p := range snap {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain synchronously runs the leave callbacks for every still connected
// player with the Shutdown reason, then removes them. This is the one
// place subscriber completion is awaited: shutdown must not race callback
// side effects against process termination. ctx bounds the wait; on
// expiry Drain logs and returns without waiting further, but the drain
// itself keeps running in the background until every leave subscriber has
// finished and the last removal is applied. Callers that outlive the
// deadline must expect the connected set to keep shrinking after Drain
// returns; it logs a completion entry when the background pass ends.
func (r *Registry) Drain(ctx context.Context) {
	r.mu.Lock()
	pending := lo.Filter(r.playersLocked(), func(p *domain.Player, _ int) bool {
		_, inProgress := r.leaving[p.ID]
		return !inProgress
	})
	for _, p := range pending {
		r.leaving[p.ID] = struct{}{}
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, p := range pending {
			r.left.DispatchWait(LeaveEvent{Player: p, Reason: domain.LeaveReasonShutdown})
			r.remove(p.ID)
		}
		r.log.Info("Leave drain completed", "players", len(pending))
	}()

	select {
	case <-done:
	case <-ctx.Done():
		r.log.Error("Shutting down before all leave subscribers finished",
			"error", errors.ErrDrainTimeout)
	}
}

// playersLocked assumes r.mu is already held.
func (r *Registry) playersLocked() []*domain.Player {
	return lo.FilterMap(r.order, func(id domain.PlayerID, _ int) (*domain.Player, bool) {
		p, ok := r.players[id]
		return p, ok
	})
}
