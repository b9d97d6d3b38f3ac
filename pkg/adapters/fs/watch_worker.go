package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/notekeep/notekeep/pkg/core"
)

// Watch emits a change event whenever the collection file is modified
// on disk, e.g. by another process or a sync tool. Events are debounced
// and the channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	buffer := s.config.EventBuffer
	if buffer <= 0 {
		buffer = 16
	}

	events := make(chan core.Event, buffer)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	// Supervisor: stop the worker once the caller's context ends.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return w.Stop(stopCtx)
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(err)
		} else if s.config.Logger != nil {
			s.config.Logger.Error("watcher shutdown failed", "error", err)
		}
	}))

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	pattern   string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(store *Store, pattern string, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// fsnotify watches directories; the store owns exactly one.
	if err := watcher.Add(w.store.config.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.store.config.Dir, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// shouldIgnore filters out files the store does not own: temp files
// from atomic writes and anything not matching the configured file name
// or the caller's pattern.
func (w *watchWorker) shouldIgnore(name string) bool {
	base := filepath.Base(name)

	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}

	if w.pattern != "" {
		ok, err := doublestar.Match(w.pattern, base)
		if err != nil || !ok {
			return true
		}
		return false
	}

	return base != w.store.config.FileName
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Rename), event.Has(fsnotify.Remove):
		return core.EventDelete
	default:
		return ""
	}
}

// processEvent handles filtering, mapping, and debouncing of a raw
// filesystem event. Returns true if the event was accepted.
func (w *watchWorker) processEvent(ctx context.Context, event fsnotify.Event) bool {
	if logger := w.store.config.Logger; logger != nil {
		logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	if w.shouldIgnore(event.Name) {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		File:      filepath.Base(event.Name),
		Timestamp: time.Now().Unix(),
	})

	return true
}

// sendEvent enqueues an event via the debouncer, protecting against
// channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover if the channel was closed while the timer fired.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) handleWatcherError(err error) {
	if logger := w.store.config.Logger; logger != nil {
		logger.Error("fsnotify error", "error", err)
	}
	if w.store.config.ErrorHandler != nil {
		w.store.config.ErrorHandler(err)
	}
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			if logger := w.store.config.Logger; logger != nil {
				if logger.Enabled(ctx, slog.LevelDebug) {
					logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
				} else {
					logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Drain in-flight debounce timers before closing the channel so no
	// timer fires into a closed channel.
	w.debouncer.stopAndWait(5 * time.Second)
	close(w.events)

	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.handleWatcherError(err)
		}
	}
}
