// Package monday implements a client for the monday.com GraphQL API. It
// builds query and mutation text from structured arguments and selection
// lists, sends them over HTTP, and classifies responses into a typed error
// taxonomy. The package performs no retries, caching, or rate limiting;
// callers layer those externally.
package monday

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindInt
	kindFloat
	kindEnum
	kindString
	kindRawJSON
	kindObject
	kindList
)

// Value is a closed representation of every argument shape the API accepts:
// null, booleans, numbers, bare enum tokens, quoted strings, pre-serialized
// JSON strings, nested input objects, and lists. Plain Go values are coerced
// automatically by the argument renderer; the constructors below exist for
// the shapes Go's type system cannot express unambiguously (enum tokens,
// explicit nulls, JSON-encoded blobs).
type Value struct {
	kind valueKind
	b    bool
	i    int64
	f    float64
	s    string
	obj  Args
	list []Value
	err  error
}

// Null returns the explicit null sentinel, rendered as the literal null.
// Passing an untyped nil argument value omits the argument instead.
func Null() Value { return Value{kind: kindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: kindInt, i: n} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// Enum returns a bare-identifier Value rendered without quotes, for
// enum-typed arguments such as board_kind: private.
func Enum(token string) Value { return Value{kind: kindEnum, s: token} }

// String returns a Value rendered as a quoted, escaped string literal.
func String(s string) Value { return Value{kind: kindString, s: s} }

// RawJSON returns a Value for a string that already holds serialized JSON.
// It is rendered as a quoted, escaped literal so the receiver sees the JSON
// text, not a GraphQL object.
func RawJSON(js string) Value { return Value{kind: kindRawJSON, s: js} }

// JSON serializes v to JSON and returns a Value rendered as a quoted,
// escaped literal, for column_values-style fields that take a JSON blob.
// A serialization failure surfaces when the argument list is rendered.
func JSON(v any) Value {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{kind: kindRawJSON, err: fmt.Errorf("encode json value: %w", err)}
	}
	return Value{kind: kindRawJSON, s: string(data)}
}

// Object returns a Value rendered as a native GraphQL input-object literal,
// preserving the declaration order of args.
func Object(args Args) Value { return Value{kind: kindObject, obj: args} }

// List returns a Value rendered as a GraphQL list literal. Elements may be
// Values or any coercible Go value.
func List(elems ...any) Value {
	v := Value{kind: kindList, list: make([]Value, 0, len(elems))}
	for _, e := range elems {
		ev, err := toValue(e)
		if err != nil {
			v.err = err
			break
		}
		v.list = append(v.list, ev)
	}
	return v
}

// toValue coerces a plain Go value into a Value. Untyped nil is rejected
// here; the argument renderer omits nil-valued arguments before coercion.
func toValue(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case Args:
		return Object(t), nil
	case map[string]any:
		return mapToObject(t), nil
	case []any:
		return List(t...), nil
	case []string:
		elems := make([]any, len(t))
		for i, s := range t {
			elems[i] = s
		}
		return List(elems...), nil
	case []int:
		elems := make([]any, len(t))
		for i, n := range t {
			elems[i] = n
		}
		return List(elems...), nil
	case []int64:
		elems := make([]any, len(t))
		for i, n := range t {
			elems[i] = n
		}
		return List(elems...), nil
	default:
		return Value{}, fmt.Errorf("unsupported argument type %T", v)
	}
}

// mapToObject converts a Go map into an Object Value. Map iteration order is
// random, so keys are sorted for deterministic output; callers that care
// about declaration order pass Args instead.
func mapToObject(m map[string]any) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make(Args, 0, len(keys))
	for _, k := range keys {
		args = append(args, Arg{Name: k, Value: m[k]})
	}
	return Object(args)
}

// render produces the GraphQL literal text for v.
func (v Value) render() (string, error) {
	if v.err != nil {
		return "", v.err
	}

	switch v.kind {
	case kindNull:
		return "null", nil
	case kindBool:
		return strconv.FormatBool(v.b), nil
	case kindInt:
		return strconv.FormatInt(v.i, 10), nil
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case kindEnum:
		return v.s, nil
	case kindString, kindRawJSON:
		return quoteString(v.s), nil
	case kindObject:
		return renderObject(v.obj)
	case kindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			s, err := e.render()
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// renderObject renders args as a GraphQL input-object literal in declaration
// order. Nil-valued entries are omitted, matching top-level argument rules.
func renderObject(args Args) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Value == nil {
			continue
		}
		v, err := toValue(a.Value)
		if err != nil {
			return "", fmt.Errorf("argument %q: %w", a.Name, err)
		}
		s, err := v.render()
		if err != nil {
			return "", fmt.Errorf("argument %q: %w", a.Name, err)
		}
		parts = append(parts, a.Name+": "+s)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// toInterface converts a Value tree back into plain Go data so it can be
// JSON-encoded for fields governed by the JSON-encoding policy table.
func (v Value) toInterface() (any, error) {
	if v.err != nil {
		return nil, v.err
	}

	switch v.kind {
	case kindNull:
		return nil, nil
	case kindBool:
		return v.b, nil
	case kindInt:
		return v.i, nil
	case kindFloat:
		return v.f, nil
	case kindEnum, kindString:
		return v.s, nil
	case kindRawJSON:
		return json.RawMessage(v.s), nil
	case kindObject:
		m := make(map[string]any, len(v.obj))
		for _, a := range v.obj {
			if a.Value == nil {
				continue
			}
			av, err := toValue(a.Value)
			if err != nil {
				return nil, err
			}
			iv, err := av.toInterface()
			if err != nil {
				return nil, err
			}
			m[a.Name] = iv
		}
		return m, nil
	case kindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			iv, err := e.toInterface()
			if err != nil {
				return nil, err
			}
			out[i] = iv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// quoteString returns s as a double-quoted, escaped literal that is valid
// both as a GraphQL string and inside the JSON-encoded query body.
// encoding/json is used rather than strconv.Quote because the latter emits
// \x escapes JSON does not accept.
func quoteString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string only fails on invalid UTF-8, which
		// encoding/json coerces rather than rejects. Unreachable.
		return strconv.Quote(s)
	}
	return string(data)
}
