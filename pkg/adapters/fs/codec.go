package fs

import (
	"encoding/json"
	"fmt"

	"github.com/notekeep/notekeep/pkg/core"
)

// encodeNotes serializes the collection as a pretty-printed JSON array,
// the form the desktop front end expects to find on disk.
func encodeNotes(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	return json.MarshalIndent(notes, "", "  ")
}

// decodeNotes parses a collection file. Both pretty-printed and compact
// JSON are accepted. Every record must carry a non-empty id and ids
// must be unique; empty title and content are valid.
func decodeNotes(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	seen := make(map[string]struct{}, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, core.ErrMissingID)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %s", i, core.ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	if notes == nil {
		// JSON "null" is structurally valid; treat it as empty.
		notes = []core.Note{}
	}
	return notes, nil
}
