package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"presence-lab/cache"
	"presence-lab/domain"
	"presence-lab/infrastructure/session"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var sampleNames = []string{"builderman", "noobmaster", "pixel_pirate", "skyqueen", "redbrick"}

// FeedWorker joins and leaves sample players on an interval and touches
// the cache for each join, so a standalone sessiond exercises the whole
// pipeline without a real engine attached.
type FeedWorker struct {
	log      *slog.Logger
	provider *session.LocalProvider
	cache    *cache.Cache
	nextID   int64
}

func NewFeedWorker(log *slog.Logger, provider *session.LocalProvider, cache *cache.Cache) *FeedWorker {
	return &FeedWorker{log: log, provider: provider, cache: cache, nextID: 1000}
}

func (w *FeedWorker) Run(ctx context.Context) error {
	w.log.Info("Starting demo feed worker")
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *FeedWorker) tick(ctx context.Context) {
	connected := w.provider.ListConnectedPlayers()

	// Keep a small population churning: leave one out of three ticks
	// once a few players are in, otherwise join a fresh one.
	if len(connected) > 2 && rand.Intn(3) == 0 {
		victim := lo.Sample(connected)
		w.provider.Leave(victim.ID, domain.LeaveReasonDisconnected)
		return
	}

	w.nextID++
	p := &domain.Player{
		ID:          domain.PlayerID(w.nextID),
		DisplayName: lo.Sample(sampleNames),
		Handle:      uuid.New(),
	}
	w.provider.Join(p)

	if _, err := w.cache.GetInfo(ctx, p.ID); err != nil {
		w.log.Warn("Demo metadata fetch failed", "player", p.ID, "error", err)
	}
}
