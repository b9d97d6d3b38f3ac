package platform

import (
	"context"

	"github.com/notekeep/notekeep/pkg/adapters/fs"
	"github.com/notekeep/notekeep/pkg/core"
)

// New wires a ready-to-use note service rooted at dir. An empty dir
// resolves to the application's private data directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepo(dir, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo, o.ids, o.clock), nil
}

// Init builds and initializes the repository without the service layer.
func Init(dir string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepo(dir, o)
}

func initRepo(dir string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	if dir == "" {
		resolved, err := DataDir()
		if err != nil {
			return nil, err
		}
		dir = resolved
	}

	store := fs.NewStore(fs.Config{
		Dir:          dir,
		FileName:     o.fileName,
		Lenient:      o.lenient,
		EventBuffer:  o.eventBuffer,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}
