package monday

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySelection is returned when a selection set contains no fields.
// The API rejects selection-less queries, so an empty set is a usage error,
// never a silent empty render.
var ErrEmptySelection = errors.New("monday: selection set is empty")

// Field is one entry in a selection set: a bare field, a field with
// arguments, a field with a nested sub-selection, or an inline fragment
// (a Name beginning with "... on"). Order of fields is preserved.
type Field struct {
	Name string
	Args Args
	Sub  []Field
}

// Fields converts bare field names into a selection set, the common case
// for flat selections.
func Fields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Field{Name: n}
	}
	return fields
}

// renderSelection renders fields as a brace-free, space-separated selection
// list, recursively wrapping sub-selections in braces.
func renderSelection(fields []Field) (string, error) {
	if len(fields) == 0 {
		return "", ErrEmptySelection
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return "", fmt.Errorf("selection field with empty name")
		}

		rendered := f.Name
		if len(f.Args) > 0 {
			args, err := renderArgs(f.Args)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", f.Name, err)
			}
			rendered += args
		}
		if len(f.Sub) > 0 {
			sub, err := renderSelection(f.Sub)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", f.Name, err)
			}
			rendered += "{" + sub + "}"
		}
		parts = append(parts, rendered)
	}

	return strings.Join(parts, " "), nil
}
