// Package notekeep is the composition root for the notekeep library.
//
// It connects the core business logic (Domain Layer) with the
// filesystem adapter (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// notekeep is the persistence backend of a desktop note-taking app: it
// owns a single pretty-printed JSON file (notes.json) inside an
// application-private data directory, appends notes to it, and reloads
// the full collection. Writes replace the file as one unit via a
// temp-file-and-rename, and all operations on a store serialize behind
// a mutex, so concurrent saves never lose an append.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := notekeep.New("", // "" resolves the app data directory
//		notekeep.WithLogger(logger),
//	)
//
//	// Save a note and read everything back
//	id, err := svc.SaveNote(ctx, "Groceries", "milk, eggs")
//	notes, err := svc.LoadNotes(ctx)
package notekeep
