package runtime

import (
	"presence-lab/contract"
)

// Bind wires a session provider to a registry: the currently connected
// players are replayed as joins, future join/leave signals are forwarded,
// and the registry drain is hooked to the provider's shutdown notice.
// The returned func detaches the join/leave forwarding.
func Bind(provider contract.SessionProvider, registry *Registry) (unbind func()) {
	for _, p := range provider.ListConnectedPlayers() {
		registry.HandleJoin(p)
	}

	offJoin := provider.OnPlayerJoined(registry.HandleJoin)
	offLeave := provider.OnPlayerLeaving(registry.HandleLeave)
	provider.BindToShutdown(registry.Drain)

	return func() {
		offJoin()
		offLeave()
	}
}
