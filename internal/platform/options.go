package platform

import (
	"log/slog"

	"github.com/notekeep/notekeep/pkg/core"
)

// options holds the internal configuration for the notekeep service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        core.Clock
	ids          core.IDGenerator
	fileName     string
	lenient      bool
	eventBuffer  int
	errorHandler func(error)
}

// Option defines a functional option for configuring notekeep.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		fileName: "", // adapter applies its default (notes.json)
	}
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default file store is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock overrides the wall clock used for note timestamps.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithFileName overrides the collection file name (default notes.json).
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// WithLenient restores the original desktop behaviour where a save
// silently replaces an unparseable collection file. Off by default.
func WithLenient(lenient bool) Option {
	return func(o *options) {
		o.lenient = lenient
	}
}

// WithEventBuffer sets the watch channel capacity. Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatchErrorHandler installs a handler for asynchronous watcher errors.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
