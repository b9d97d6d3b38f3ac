package notekeep

import (
	"log/slog"

	"github.com/notekeep/notekeep/internal/platform"
	"github.com/notekeep/notekeep/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Event is a public alias for store change events.
type Event = core.Event

// Service is a public alias for the domain service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring notekeep.
type Option = platform.Option

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithClock overrides the wall clock used for note timestamps.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return platform.WithIDGenerator(ids)
}

// WithFileName overrides the collection file name (default notes.json).
func WithFileName(name string) Option {
	return platform.WithFileName(name)
}

// WithLenient restores the original desktop behaviour where a save
// silently replaces an unparseable collection file.
func WithLenient(lenient bool) Option {
	return platform.WithLenient(lenient)
}

// WithEventBuffer sets the watch channel capacity.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatchErrorHandler installs a handler for asynchronous watcher errors.
func WithWatchErrorHandler(fn func(error)) Option {
	return platform.WithWatchErrorHandler(fn)
}

// --- Factory ---

// New creates a new notekeep Service rooted at dir. An empty dir
// resolves the application's private data directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

// Init builds and initializes the repository without the service layer.
func Init(dir string, opts ...Option) (core.Repository, error) {
	return platform.Init(dir, opts...)
}

// DataDir resolves the application-private data directory.
func DataDir() (string, error) {
	return platform.DataDir()
}
