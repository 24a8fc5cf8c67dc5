// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence of verdicts and of the deferred classification queue so
// that different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"secondchance/pkg/domain"
)

// VerdictStorage persists the latest verdict per canonical URL (the "master" list).
type VerdictStorage interface {
	// MasterByURL returns the stored verdict for an exact canonical URL, or nil
	// when the URL was never stored. The returned verdict has Success set.
	MasterByURL(ctx context.Context, URL string) (*domain.Verdict, error)
	// UpsertMaster inserts a verdict, or overwrites score and safe and refreshes
	// date_added when the URL is already stored. Repeating a call is harmless.
	UpsertMaster(ctx context.Context, URL string, score int, safe bool) error
	// ForceSafe marks the URL safe with domain.OverrideScore regardless of any
	// prior state, creating the row when it does not exist.
	ForceSafe(ctx context.Context, URL string) error
}

// QueueStorage is the append-only list of URLs that could not be classified
// because the reputation provider was rate limiting us.
type QueueStorage interface {
	// Enqueue adds the URL unless it is already queued. It reports whether a
	// new entry was created; a duplicate is not an error.
	Enqueue(ctx context.Context, URL string) (bool, error)
	// OldestQueued returns the entry that has been waiting the longest without
	// removing it, or nil when the queue is empty.
	OldestQueued(ctx context.Context) (*domain.QueueEntry, error)
	// QueueLength returns the number of queued URLs.
	QueueLength(ctx context.Context) (int64, error)
}

// Storage is the complete store gateway with lifecycle management.
type Storage interface {
	VerdictStorage
	QueueStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
