// Package session provides an in-process SessionProvider driven by
// explicit Join/Leave calls. It backs the daemon's demo feed and
// integration tests; a real engine adapter exposes the same surface.
package session

import (
	"context"
	"log/slog"
	"sync"

	"presence-lab/domain"
	"presence-lab/errors"
)

type joinSub struct {
	id int
	fn func(*domain.Player)
}

type leaveSub struct {
	id int
	fn func(*domain.Player, domain.LeaveReason)
}

// LocalProvider implements contract.SessionProvider.
//
// Unlike the registry's fan-out, provider callbacks run synchronously on
// the signalling goroutine: a Join immediately followed by a Leave is
// delivered in that order, which the registry depends on.
type LocalProvider struct {
	mu       sync.Mutex
	log      *slog.Logger
	players  map[domain.PlayerID]*domain.Player
	order    []domain.PlayerID
	nextSub  int
	joins    []joinSub
	leaves   []leaveSub
	shutdown []func(context.Context)
}

func NewLocalProvider(log *slog.Logger) *LocalProvider {
	return &LocalProvider{
		log:     log,
		players: make(map[domain.PlayerID]*domain.Player),
	}
}

// Join connects a player and notifies subscribers in registration order.
// A duplicate join is logged and ignored.
func (l *LocalProvider) Join(p *domain.Player) {
	l.mu.Lock()
	if _, ok := l.players[p.ID]; ok {
		l.mu.Unlock()
		l.log.Warn("Ignoring join", "player", p.ID, "error", errors.ErrAlreadyConnected)
		return
	}
	l.players[p.ID] = p
	l.order = append(l.order, p.ID)
	subs := make([]joinSub, len(l.joins))
	copy(subs, l.joins)
	l.mu.Unlock()

	for _, sub := range subs {
		sub.fn(p)
	}
}

// Leave disconnects a player and notifies subscribers with the reason.
// An unknown player is logged and ignored.
func (l *LocalProvider) Leave(id domain.PlayerID, reason domain.LeaveReason) {
	l.mu.Lock()
	p, ok := l.players[id]
	if !ok {
		l.mu.Unlock()
		l.log.Warn("Ignoring leave", "player", id, "error", errors.ErrNotConnected)
		return
	}
	delete(l.players, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	subs := make([]leaveSub, len(l.leaves))
	copy(subs, l.leaves)
	l.mu.Unlock()

	for _, sub := range subs {
		sub.fn(p, reason)
	}
}

// Shutdown invokes every bound shutdown hook, in order, on the calling
// goroutine. ctx bounds how long the hooks may run.
func (l *LocalProvider) Shutdown(ctx context.Context) {
	l.mu.Lock()
	hooks := make([]func(context.Context), len(l.shutdown))
	copy(hooks, l.shutdown)
	l.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}

func (l *LocalProvider) OnPlayerJoined(fn func(*domain.Player)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextSub++
	id := l.nextSub
	l.joins = append(l.joins, joinSub{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, sub := range l.joins {
			if sub.id == id {
				l.joins = append(l.joins[:i], l.joins[i+1:]...)
				return
			}
		}
	}
}

func (l *LocalProvider) OnPlayerLeaving(fn func(*domain.Player, domain.LeaveReason)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextSub++
	id := l.nextSub
	l.leaves = append(l.leaves, leaveSub{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, sub := range l.leaves {
			if sub.id == id {
				l.leaves = append(l.leaves[:i], l.leaves[i+1:]...)
				return
			}
		}
	}
}

func (l *LocalProvider) ListConnectedPlayers() []*domain.Player {
	l.mu.Lock()
	defer l.mu.Unlock()

	players := make([]*domain.Player, 0, len(l.order))
	for _, id := range l.order {
		players = append(players, l.players[id])
	}
	return players
}

func (l *LocalProvider) BindToShutdown(fn func(context.Context)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shutdown = append(l.shutdown, fn)
}
