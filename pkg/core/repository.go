package core

import "context"

// Repository defines the contract for persisting the note collection.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, SQL, S3, etc).
type Repository interface {
	// Append adds a note to the end of the collection and persists the
	// whole collection as one unit.
	Append(ctx context.Context, n Note) error

	// List returns the full collection in insertion order (oldest
	// first). A store that has never been written to returns an empty
	// list, not an error.
	List(ctx context.Context) ([]Note, error)

	// Initialize ensures the underlying storage is ready (e.g. create
	// the backing directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report
// external changes to the collection.
type Watchable interface {
	// Watch emits an event whenever the backing storage changes. The
	// channel is closed when ctx is cancelled. Pattern is a doublestar
	// glob matched against the changed file's base name; empty matches
	// everything the store owns.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
