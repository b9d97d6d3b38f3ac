package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir           string `json:"dir"`
	File          string `json:"file"`
	Lenient       bool   `json:"lenient"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return StoreState{
		Dir:           s.config.Dir,
		File:          s.config.FileName,
		Lenient:       s.config.Lenient,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.watcherActive = active
}
