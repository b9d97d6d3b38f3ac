package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the business logic for notes. It owns the two points
// of non-determinism (id generation and time capture) so the repository
// stays a pure persistence layer.
type Service struct {
	repo  Repository
	ids   IDGenerator
	clock Clock
}

// NewService creates a new Service. Nil ids or clock fall back to the
// UUID generator and the system clock.
func NewService(repo Repository, ids IDGenerator, clock Clock) *Service {
	if ids == nil {
		ids = UUIDGenerator()
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{repo: repo, ids: ids, clock: clock}
}

// SaveNote appends a new note with a freshly generated id and the
// current wall-clock time, and returns the id. Title and content are
// accepted as-is; empty strings are valid.
func (s *Service) SaveNote(ctx context.Context, title, content string) (string, error) {
	id := s.ids.NewID()
	if id == "" {
		return "", errors.New("id generator returned an empty id")
	}

	n := Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Timestamp: s.clock.Now().Unix(),
	}

	if err := s.repo.Append(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// LoadNotes returns the full collection in insertion order.
func (s *Service) LoadNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// FindNotes returns the notes whose title matches the given doublestar
// glob pattern. An empty pattern returns everything.
func (s *Service) FindNotes(ctx context.Context, pattern string) ([]Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return notes, nil
	}

	matched := make([]Note, 0, len(notes))
	for _, n := range notes {
		ok, err := doublestar.Match(pattern, n.Title)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
