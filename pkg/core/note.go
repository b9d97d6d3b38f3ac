package core

// Note is the central entity of the domain: a single user-authored
// entry with a stable, never-reused identifier.
//
// The field names and JSON tags form the on-disk contract and must not
// change without a migration story.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // Unix seconds, captured at creation
}

// EventType represents the type of change observed on the note store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the persisted note collection.
type Event struct {
	Type      EventType
	File      string // base name of the changed file, e.g. "notes.json"
	Timestamp int64  // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.File
}
