// Package domain contains core concepts of the presence system.
// This file defines Player entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/google/uuid"

type PlayerID int64

// Player is a connected session participant. Players are owned by the
// session provider; the registry and cache only reference them and never
// mutate their fields.
type Player struct {
	ID          PlayerID
	DisplayName string

	// Handle is an opaque token usable for identity comparison only.
	Handle uuid.UUID
}

// LeaveReason classifies why a player left the session.
type LeaveReason string

const (
	LeaveReasonDisconnected LeaveReason = "Disconnected"
	LeaveReasonKicked       LeaveReason = "Kicked"
	LeaveReasonErrored      LeaveReason = "Errored"
	LeaveReasonShutdown     LeaveReason = "Shutdown"
)
