package fs

import (
	"errors"
	"strings"
	"testing"

	"github.com/notekeep/notekeep/pkg/core"
)

func TestDecodeNotes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr error // nil means success; non-nil is checked with errors.Is
		anyErr  bool
	}{
		{
			name: "Pretty Printed",
			input: `[
  {
    "id": "a",
    "title": "T",
    "content": "C",
    "timestamp": 1756000000
  }
]`,
			wantLen: 1,
		},
		{
			name:    "Compact",
			input:   `[{"id":"a","title":"T","content":"C","timestamp":1},{"id":"b","title":"","content":"","timestamp":2}]`,
			wantLen: 2,
		},
		{
			name:    "Empty Array",
			input:   `[]`,
			wantLen: 0,
		},
		{
			name:    "Null",
			input:   `null`,
			wantLen: 0,
		},
		{
			name:   "Invalid JSON",
			input:  `this is not json`,
			anyErr: true,
		},
		{
			name:   "Object Instead of Array",
			input:  `{"id":"a"}`,
			anyErr: true,
		},
		{
			name:    "Missing ID",
			input:   `[{"title":"T","content":"C","timestamp":1}]`,
			wantErr: core.ErrMissingID,
		},
		{
			name:    "Duplicate ID",
			input:   `[{"id":"a","title":"","content":"","timestamp":1},{"id":"a","title":"","content":"","timestamp":2}]`,
			wantErr: core.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := decodeNotes([]byte(tt.input))

			if tt.anyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeNotes failed: %v", err)
			}
			if len(notes) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(notes), tt.wantLen)
			}
		})
	}
}

func TestEncodeNotes(t *testing.T) {
	t.Run("Round Trip Preserves Fields and Order", func(t *testing.T) {
		in := []core.Note{
			{ID: "a", Title: "first", Content: "1", Timestamp: 100},
			{ID: "b", Title: "second", Content: "2", Timestamp: 200},
			{ID: "c", Title: "", Content: "", Timestamp: 300},
		}

		data, err := encodeNotes(in)
		if err != nil {
			t.Fatalf("encodeNotes failed: %v", err)
		}

		out, err := decodeNotes(data)
		if err != nil {
			t.Fatalf("decodeNotes failed: %v", err)
		}

		if len(out) != len(in) {
			t.Fatalf("len = %d, want %d", len(out), len(in))
		}
		for i := range in {
			if out[i] != in[i] {
				t.Errorf("note %d = %+v, want %+v", i, out[i], in[i])
			}
		}
	})

	t.Run("Pretty Prints", func(t *testing.T) {
		data, err := encodeNotes([]core.Note{{ID: "a", Timestamp: 1}})
		if err != nil {
			t.Fatalf("encodeNotes failed: %v", err)
		}

		if !strings.Contains(string(data), "\n  {") {
			t.Errorf("expected indented output, got:\n%s", data)
		}
	})

	t.Run("Nil Collection Encodes as Empty Array", func(t *testing.T) {
		data, err := encodeNotes(nil)
		if err != nil {
			t.Fatalf("encodeNotes failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("got %q, want %q", data, "[]")
		}
	})
}
