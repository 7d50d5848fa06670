package session

import (
	"context"
	"log/slog"
	"testing"

	"presence-lab/domain"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func player(id int64, name string) *domain.Player {
	return &domain.Player{ID: domain.PlayerID(id), DisplayName: name, Handle: uuid.New()}
}

func TestLocalProvider_JoinLeaveNotifySynchronously(t *testing.T) {
	req := require.New(t)
	provider := NewLocalProvider(logs.GetLoggerFromLevel(slog.LevelDebug))

	var joined []*domain.Player
	var left []domain.LeaveReason
	provider.OnPlayerJoined(func(p *domain.Player) { joined = append(joined, p) })
	provider.OnPlayerLeaving(func(_ *domain.Player, r domain.LeaveReason) { left = append(left, r) })

	alice := player(1, "alice")

	// When joining then leaving on the same goroutine
	provider.Join(alice)
	provider.Leave(alice.ID, domain.LeaveReasonKicked)

	// Then callbacks were delivered in signal order, synchronously
	req.Equal([]*domain.Player{alice}, joined)
	req.Equal([]domain.LeaveReason{domain.LeaveReasonKicked}, left)
	req.Empty(provider.ListConnectedPlayers())
}

func TestLocalProvider_DuplicateSignalsIgnored(t *testing.T) {
	req := require.New(t)
	provider := NewLocalProvider(logs.GetLoggerFromLevel(slog.LevelDebug))

	joins := 0
	leaves := 0
	provider.OnPlayerJoined(func(*domain.Player) { joins++ })
	provider.OnPlayerLeaving(func(*domain.Player, domain.LeaveReason) { leaves++ })

	alice := player(1, "alice")
	provider.Join(alice)
	provider.Join(alice)
	provider.Leave(99, domain.LeaveReasonDisconnected)

	req.Equal(1, joins)
	req.Equal(0, leaves)
	req.Len(provider.ListConnectedPlayers(), 1)
}

func TestLocalProvider_ListKeepsJoinOrder(t *testing.T) {
	req := require.New(t)
	provider := NewLocalProvider(logs.GetLoggerFromLevel(slog.LevelDebug))

	a, b, c := player(1, "a"), player(2, "b"), player(3, "c")
	provider.Join(a)
	provider.Join(b)
	provider.Join(c)
	provider.Leave(b.ID, domain.LeaveReasonDisconnected)

	req.Equal([]*domain.Player{a, c}, provider.ListConnectedPlayers())
}

func TestLocalProvider_UnsubscribeStopsDelivery(t *testing.T) {
	req := require.New(t)
	provider := NewLocalProvider(logs.GetLoggerFromLevel(slog.LevelDebug))

	joins := 0
	off := provider.OnPlayerJoined(func(*domain.Player) { joins++ })

	provider.Join(player(1, "a"))
	off()
	provider.Join(player(2, "b"))

	req.Equal(1, joins)
}

func TestLocalProvider_ShutdownRunsBoundHooks(t *testing.T) {
	req := require.New(t)
	provider := NewLocalProvider(logs.GetLoggerFromLevel(slog.LevelDebug))

	ran := 0
	provider.BindToShutdown(func(context.Context) { ran++ })
	provider.BindToShutdown(func(context.Context) { ran++ })

	provider.Shutdown(context.Background())

	req.Equal(2, ran)
}
