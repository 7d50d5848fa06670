package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"presence-lab/domain"
	"presence-lab/domain/avatar"

	"github.com/dgraph-io/badger/v4"
)

const (
	profilePrefix = "profile:"
	avatarPrefix  = "avatar:"
)

// Metadata stores the Ready values of both cache slots in BadgerDB,
// keyed per player. The daemon opens the database in in-memory mode:
// entries live exactly as long as the process, restart persistence is
// deliberately not provided.
type Metadata struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMetadata(db *badger.DB, log *slog.Logger) *Metadata {
	return &Metadata{db: db, log: log}
}

func profileKey(id domain.PlayerID) []byte {
	return []byte(profilePrefix + strconv.FormatInt(int64(id), 10))
}

func avatarKey(id domain.PlayerID) []byte {
	return []byte(avatarPrefix + strconv.FormatInt(int64(id), 10))
}

// PutProfile persists the profile slot for a player.
func (m *Metadata) PutProfile(id domain.PlayerID, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile %d: %w", id, err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(id), data)
	})
}

// GetProfile reads the profile slot. A missing key is not an error.
func (m *Metadata) GetProfile(id domain.PlayerID) (domain.Profile, bool, error) {
	var p domain.Profile
	found, err := m.get(profileKey(id), &p)
	return p, found, err
}

// PutAvatars persists the avatar slot for a player.
func (m *Metadata) PutAvatars(id domain.PlayerID, set avatar.Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal avatars %d: %w", id, err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(avatarKey(id), data)
	})
}

// GetAvatars reads the avatar slot. A missing key is not an error.
func (m *Metadata) GetAvatars(id domain.PlayerID) (avatar.Set, bool, error) {
	var set avatar.Set
	found, err := m.get(avatarKey(id), &set)
	return set, found, err
}

func (m *Metadata) get(key []byte, out any) (bool, error) {
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete evicts both slots for a player. Idempotent: deleting absent
// keys succeeds.
func (m *Metadata) Delete(id domain.PlayerID) error {
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(profileKey(id)); err != nil {
			return err
		}
		return txn.Delete(avatarKey(id))
	})
}
