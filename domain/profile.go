package domain

import "presence-lab/domain/avatar"

// Profile holds the externally fetched identity fields of a player.
type Profile struct {
	ID          PlayerID `json:"id"`
	DisplayName string   `json:"display_name"`
	Username    string   `json:"username"`
	Verified    bool     `json:"verified"`
	Description string   `json:"description"`
}

// PlayerInfo is the composition of both metadata slots for one player.
// Either half may be zero when its fetch failed; callers inspect the
// error returned alongside.
type PlayerInfo struct {
	Profile Profile
	Avatars avatar.Set
}
