package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/notekeep/notekeep/pkg/core"
)

// DefaultFileName is the file the collection is persisted to.
const DefaultFileName = "notes.json"

// Config holds the configuration for the file store.
type Config struct {
	// Dir is the application-private backing directory.
	Dir string
	// FileName overrides the collection file name. Defaults to notes.json.
	FileName string
	// Lenient restores the original desktop behaviour on save: an
	// unparseable collection file is treated as empty and overwritten
	// instead of aborting the save. Load always surfaces parse errors.
	Lenient bool
	// EventBuffer is the watch channel capacity. Zero means default (16).
	EventBuffer int
	Logger      *slog.Logger
	// ErrorHandler receives asynchronous watcher errors.
	ErrorHandler func(error)
}

// Store implements core.Repository on top of a single JSON file.
//
// The whole collection is read before any mutation, mutated in memory,
// and written back in full; a mutex serializes operations so concurrent
// saves through one Store never lose an append.
type Store struct {
	config Config

	mu sync.Mutex // guards the read-modify-write cycle

	stateMu       sync.RWMutex
	watcherActive bool
}

// NewStore creates a new file-backed note store.
func NewStore(config Config) *Store {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	return &Store{config: config}
}

// Path returns the full path of the collection file.
func (s *Store) Path() string {
	return filepath.Join(s.config.Dir, s.config.FileName)
}

// Initialize ensures the backing directory exists, creating it
// (including missing parents) if absent.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.Dir == "" {
		return fmt.Errorf("store directory is not configured")
	}
	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Append loads the existing collection, appends n, and overwrites the
// file with the full collection.
//
// Workflow:
//  1. Ensure the backing directory exists.
//  2. Read and parse the current collection (missing file -> empty).
//  3. Append the new note in memory.
//  4. Pretty-encode and write atomically (temp file + rename).
func (s *Store) Append(ctx context.Context, n core.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	notes, err := s.readCollection()
	if err != nil {
		var corrupt *parseError
		if !s.config.Lenient || !errors.As(err, &corrupt) {
			return err
		}
		// Lenient mode: the unreadable file is about to be replaced.
		if s.config.Logger != nil {
			s.config.Logger.Warn("discarding unreadable notes file",
				"path", s.Path(), "error", err)
		}
		notes = nil
	}

	notes = append(notes, n)

	data, err := encodeNotes(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := writeFileAtomic(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("note appended",
			"id", n.ID, "path", s.Path(), "total", len(notes))
	}

	return nil
}

// List returns the full collection. A missing file yields an empty
// list; an unreadable or unparseable file is an error. The backing
// directory is never created here.
func (s *Store) List(ctx context.Context) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readCollection()
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

// readCollection reads and parses the collection file. Missing file
// returns (nil, nil). Parse failures come back as *parseError so
// Append can apply the lenient policy; I/O failures never do. Caller
// must hold s.mu.
func (s *Store) readCollection() ([]core.Note, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	notes, err := decodeNotes(data)
	if err != nil {
		return nil, &parseError{err: err}
	}
	return notes, nil
}

// parseError distinguishes a corrupt collection file from I/O
// failures; only the former is recoverable in lenient mode.
type parseError struct {
	err error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("failed to parse notes file: %v", e.err)
}

func (e *parseError) Unwrap() error { return e.err }
