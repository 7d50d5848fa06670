//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"presence-lab/domain"
	"presence-lab/domain/avatar"
)

// SessionProvider is the external collaborator reporting who is connected.
// Callbacks are invoked in signal order; the returned funcs unregister.
type SessionProvider interface {
	OnPlayerJoined(fn func(*domain.Player)) (unsubscribe func())
	OnPlayerLeaving(fn func(*domain.Player, domain.LeaveReason)) (unsubscribe func())
	ListConnectedPlayers() []*domain.Player

	// BindToShutdown registers a hook invoked once before process teardown.
	// The context bounds how long the hook may run.
	BindToShutdown(fn func(context.Context))
}

// MetadataSource is the external, latency-bearing service supplying
// per-player profile fields and avatar images. Calls are fallible and
// carry real cost; callers are expected to deduplicate.
type MetadataSource interface {
	FetchProfile(ctx context.Context, id int64) (domain.Profile, error)
	FetchAvatar(ctx context.Context, id int64, req avatar.Request) (avatar.Image, error)
}

// BatchMetadataSource is an optional capability of a MetadataSource.
// When implemented, a full variant grid is fetched in one round trip.
type BatchMetadataSource interface {
	MetadataSource
	FetchAvatarBatch(ctx context.Context, id int64, reqs []avatar.Request) (avatar.Set, error)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need
// for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
