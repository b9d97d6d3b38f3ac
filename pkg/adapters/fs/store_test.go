package fs_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/notekeep/notekeep/pkg/adapters/fs"
	"github.com/notekeep/notekeep/pkg/core"
)

// setupStore creates a store rooted in a fresh temp directory.
func setupStore(t *testing.T, opts ...func(*fs.Config)) (*fs.Store, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	cfg := fs.Config{Dir: dir}
	for _, opt := range opts {
		opt(&cfg)
	}

	return fs.NewStore(cfg), dir
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		store, dir := setupStore(t)

		if err := store.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("expected directory to be created at %s", dir)
		}
	})

	t.Run("Fails Without Directory Configured", func(t *testing.T) {
		store := fs.NewStore(fs.Config{})

		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail with empty dir")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh Environment Returns Empty List", func(t *testing.T) {
		store, dir := setupStore(t)

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected empty list, got %d entries", len(notes))
		}

		// List never creates the backing directory.
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Error("List should not create the data directory")
		}
	})

	t.Run("Surfaces Parse Error", func(t *testing.T) {
		store, dir := setupStore(t)
		writeRaw(t, dir, "not valid json at all")

		if _, err := store.List(ctx); err == nil {
			t.Error("expected parse error, got nil")
		}
	})

	t.Run("Surfaces Parse Error Even in Lenient Mode", func(t *testing.T) {
		store, dir := setupStore(t, func(c *fs.Config) { c.Lenient = true })
		writeRaw(t, dir, "{broken")

		if _, err := store.List(ctx); err == nil {
			t.Error("expected parse error, got nil")
		}
	})
}

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("Save Then Load", func(t *testing.T) {
		store, _ := setupStore(t)

		n := core.Note{ID: "id-1", Title: "T", Content: "C", Timestamp: 1756000000}
		if err := store.Append(ctx, n); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != 1 {
			t.Fatalf("expected 1 note, got %d", len(notes))
		}
		if notes[0] != n {
			t.Errorf("got %+v, want %+v", notes[0], n)
		}
	})

	t.Run("Creates Directory on First Save", func(t *testing.T) {
		store, dir := setupStore(t)

		err := store.Append(ctx, core.Note{ID: "id-1", Timestamp: 1})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, fs.DefaultFileName)); err != nil {
			t.Errorf("notes file missing: %v", err)
		}
	})

	t.Run("Appends in Call Order", func(t *testing.T) {
		store, _ := setupStore(t)

		const n = 7
		for i := 0; i < n; i++ {
			note := core.Note{ID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("t-%d", i), Timestamp: int64(i)}
			if err := store.Append(ctx, note); err != nil {
				t.Fatalf("Append %d failed: %v", i, err)
			}
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != n {
			t.Fatalf("expected %d notes, got %d", n, len(notes))
		}
		for i, note := range notes {
			if note.ID != fmt.Sprintf("id-%d", i) {
				t.Errorf("position %d holds %s", i, note.ID)
			}
		}
	})

	t.Run("Writes Pretty JSON", func(t *testing.T) {
		store, dir := setupStore(t)

		if err := store.Append(ctx, core.Note{ID: "id-1", Timestamp: 1}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, fs.DefaultFileName))
		if err != nil {
			t.Fatal(err)
		}
		if data[0] != '[' || !json.Valid(data) {
			t.Fatalf("unexpected file contents:\n%s", data)
		}
		if !containsIndent(data) {
			t.Errorf("expected multi-line indented output, got:\n%s", data)
		}
	})

	t.Run("Corrupt File Aborts Save by Default", func(t *testing.T) {
		store, dir := setupStore(t)
		writeRaw(t, dir, "garbage")

		err := store.Append(ctx, core.Note{ID: "id-1", Timestamp: 1})
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		// The corrupt file must be left untouched.
		data, readErr := os.ReadFile(filepath.Join(dir, fs.DefaultFileName))
		if readErr != nil {
			t.Fatal(readErr)
		}
		if string(data) != "garbage" {
			t.Errorf("corrupt file was modified: %q", data)
		}
	})

	t.Run("Lenient Mode Replaces Corrupt File", func(t *testing.T) {
		store, dir := setupStore(t, func(c *fs.Config) { c.Lenient = true })
		writeRaw(t, dir, "garbage")

		if err := store.Append(ctx, core.Note{ID: "id-1", Title: "T", Timestamp: 1}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != 1 || notes[0].ID != "id-1" {
			t.Errorf("expected exactly the new note, got %+v", notes)
		}
	})

	t.Run("Lenient Mode Still Surfaces Read Errors", func(t *testing.T) {
		store, dir := setupStore(t, func(c *fs.Config) { c.Lenient = true })

		// A directory where the file should be makes the read itself fail.
		if err := os.MkdirAll(filepath.Join(dir, fs.DefaultFileName), 0755); err != nil {
			t.Fatal(err)
		}

		if err := store.Append(ctx, core.Note{ID: "id-1", Timestamp: 1}); err == nil {
			t.Error("expected read error, got nil")
		}
	})

	t.Run("Concurrent Saves All Land", func(t *testing.T) {
		store, _ := setupStore(t)

		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- store.Append(ctx, core.Note{ID: fmt.Sprintf("id-%d", i), Timestamp: int64(i)})
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}

		notes, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(notes) != n {
			t.Errorf("expected %d notes after concurrent saves, got %d", n, len(notes))
		}
	})
}

func writeRaw(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fs.DefaultFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func containsIndent(data []byte) bool {
	for i := 0; i+2 < len(data); i++ {
		if data[i] == '\n' && data[i+1] == ' ' && data[i+2] == ' ' {
			return true
		}
	}
	return false
}
