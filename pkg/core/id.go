package core

import "github.com/google/uuid"

// IDGenerator abstracts note id generation. Generated ids must be
// unique with overwhelming probability; they are never validated
// against the existing collection.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// UUIDGenerator returns the default generator (random v4 UUIDs).
func UUIDGenerator() IDGenerator { return uuidGenerator{} }
