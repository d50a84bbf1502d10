package monday

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Arg is a single named argument. Value may be a Value or any coercible Go
// value; a nil Value omits the argument entirely.
type Arg struct {
	Name  string
	Value any
}

// Args is an ordered argument list. Declaration order is preserved in the
// rendered text, which is why this is a slice and not a map.
type Args []Arg

// jsonEncodedFields is the per-field policy table for the API's dual-mode
// arguments: these fields take a JSON-encoded string blob, so nested
// objects, maps, and plain strings given for them are rendered as quoted,
// escaped JSON rather than native GraphQL literals. Every other field
// renders natively. The JSON and RawJSON constructors override the table
// per value in either direction.
var jsonEncodedFields = map[string]struct{}{
	"column_values":     {},
	"column_values_str": {},
	"settings_str":      {},
	"defaults":          {},
}

// renderArgs renders args as a parenthesized, comma-separated argument list.
// An empty or all-nil list renders as the empty string with no parentheses.
func renderArgs(args Args) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Value == nil {
			continue
		}
		if a.Name == "" {
			return "", fmt.Errorf("argument with empty name")
		}

		rendered, err := renderArg(a)
		if err != nil {
			return "", fmt.Errorf("argument %q: %w", a.Name, err)
		}
		parts = append(parts, a.Name+": "+rendered)
	}

	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

// renderArg renders a single argument value, consulting the JSON-encoding
// policy table for the argument's field name.
func renderArg(a Arg) (string, error) {
	v, err := toValue(a.Value)
	if err != nil {
		return "", err
	}

	if _, jsonField := jsonEncodedFields[a.Name]; jsonField {
		return renderJSONField(v)
	}
	return v.render()
}

// renderJSONField renders a value destined for a JSON-blob field. A string
// value is treated as pre-serialized JSON and quoted as-is; structured
// values are serialized first. Scalars the caller could not have meant as
// JSON (numbers, booleans, enums, null) render natively.
func renderJSONField(v Value) (string, error) {
	switch v.kind {
	case kindString, kindRawJSON:
		if v.err != nil {
			return "", v.err
		}
		return quoteString(v.s), nil
	case kindObject, kindList:
		plain, err := v.toInterface()
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(plain)
		if err != nil {
			return "", fmt.Errorf("encode json field: %w", err)
		}
		return quoteString(string(data)), nil
	default:
		return v.render()
	}
}
