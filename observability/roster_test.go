package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"presence-lab/domain"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestWriteRoster_RendersAllPlayers(t *testing.T) {
	req := require.New(t)

	alice := &domain.Player{ID: 1, DisplayName: "alice", Handle: uuid.New()}
	bob := &domain.Player{ID: 2, DisplayName: "bob", Handle: uuid.New()}

	var buf bytes.Buffer
	WriteRoster(&buf, []*domain.Player{alice, bob})

	out := buf.String()
	req.Contains(out, "CONNECTED PLAYERS (2)")
	req.Contains(out, "alice")
	req.Contains(out, "bob")
	req.Contains(out, alice.Handle.String())
	req.Contains(out, bob.Handle.String())
}

func TestWriteRoster_EmptySet(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	WriteRoster(&buf, nil)

	req.Contains(buf.String(), "CONNECTED PLAYERS (0)")
}

func TestMonitor_SnapshotAggregatesCounters(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	monitor.IncrJoin()
	monitor.IncrJoin()
	monitor.IncrLeave()
	monitor.IncrProfileFetch()
	monitor.IncrProfileHit()
	monitor.IncrAvatarFetch()
	monitor.IncrFetchFailure()

	stats := monitor.Snapshot(5)

	req.Equal(5, stats.Connected)
	req.Equal(uint64(2), stats.Joins)
	req.Equal(uint64(1), stats.Leaves)
	req.Equal(uint64(1), stats.ProfileFetches)
	req.Equal(uint64(1), stats.ProfileHits)
	req.Equal(uint64(1), stats.AvatarFetches)
	req.Equal(uint64(1), stats.FetchFailures)
}

func TestMonitor_NilReceiverIsSafe(t *testing.T) {
	req := require.New(t)

	// Instrumented components may run without a monitor attached
	var monitor *Monitor
	req.NotPanics(func() {
		monitor.IncrJoin()
		monitor.IncrLeave()
		monitor.IncrProfileHit()
		monitor.IncrProfileFetch()
		monitor.IncrAvatarHit()
		monitor.IncrAvatarFetch()
		monitor.IncrFetchFailure()
	})
}
