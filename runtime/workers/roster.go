package workers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"presence-lab/observability"
	"presence-lab/runtime"
)

// RosterWorker prints the connected-player table on an interval.
// Intended as a debugging aid; wire it only when roster output is wanted.
type RosterWorker struct {
	log      *slog.Logger
	registry *runtime.Registry
	out      io.Writer
	interval time.Duration
}

func NewRosterWorker(log *slog.Logger, registry *runtime.Registry,
	out io.Writer, interval time.Duration) *RosterWorker {
	return &RosterWorker{log: log, registry: registry, out: out, interval: interval}
}

func (w *RosterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			observability.WriteRoster(w.out, w.registry.Players())
		}
	}
}
