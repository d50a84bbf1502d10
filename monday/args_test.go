package monday

import (
	"encoding/json"
	"strings"
	"testing"
)

func Test_renderArgs_Cases(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want string
	}{
		{
			name: "empty args render as empty string without parens",
			args: Args{},
			want: "",
		},
		{
			name: "nil args render as empty string",
			args: nil,
			want: "",
		},
		{
			name: "scalar primitives",
			args: Args{
				{Name: "board_id", Value: 123},
				{Name: "limit", Value: int64(25)},
				{Name: "newest_first", Value: true},
				{Name: "ratio", Value: 0.5},
			},
			want: `(board_id: 123, limit: 25, newest_first: true, ratio: 0.5)`,
		},
		{
			name: "string values are quoted",
			args: Args{{Name: "item_name", Value: "New task"}},
			want: `(item_name: "New task")`,
		},
		{
			name: "enum tokens are unquoted",
			args: Args{{Name: "board_kind", Value: Enum("private")}},
			want: `(board_kind: private)`,
		},
		{
			name: "nil values are omitted",
			args: Args{
				{Name: "board_id", Value: 1},
				{Name: "description", Value: nil},
			},
			want: `(board_id: 1)`,
		},
		{
			name: "explicit null sentinel renders literal null",
			args: Args{{Name: "folder_id", Value: Null()}},
			want: `(folder_id: null)`,
		},
		{
			name: "all-nil args render as empty string",
			args: Args{{Name: "a", Value: nil}, {Name: "b", Value: nil}},
			want: "",
		},
		{
			name: "nested args render as input object literal",
			args: Args{{Name: "filter", Value: Args{
				{Name: "type", Value: Enum("UNREAD")},
				{Name: "limit", Value: 20},
			}}},
			want: `(filter: {type: UNREAD, limit: 20})`,
		},
		{
			name: "list of ids renders unquoted numbers",
			args: Args{{Name: "ids", Value: []int{1, 2, 3}}},
			want: `(ids: [1, 2, 3])`,
		},
		{
			name: "list of strings renders quoted elements",
			args: Args{{Name: "emails", Value: []string{"a@b.co", "c@d.co"}}},
			want: `(emails: ["a@b.co", "c@d.co"])`,
		},
		{
			name: "column_values map renders as escaped JSON string",
			args: Args{{Name: "column_values", Value: map[string]any{
				"status": map[string]any{"label": "Done"},
			}}},
			want: `(column_values: "{\"status\":{\"label\":\"Done\"}}")`,
		},
		{
			name: "column_values pre-serialized string is quoted as-is",
			args: Args{{Name: "column_values", Value: `{"status":{"label":"Done"}}`}},
			want: `(column_values: "{\"status\":{\"label\":\"Done\"}}")`,
		},
		{
			name: "JSON wrapper forces JSON-string mode for any field",
			args: Args{{Name: "body", Value: JSON(map[string]any{"k": "v"})}},
			want: `(body: "{\"k\":\"v\"}")`,
		},
		{
			name: "non-policy nested map renders natively with sorted keys",
			args: Args{{Name: "pos", Value: map[string]any{"y": 2, "x": 1}}},
			want: `(pos: {x: 1, y: 2})`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderArgs(tt.args)
			if err != nil {
				t.Fatalf("renderArgs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("renderArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_renderArgs_UnsupportedType(t *testing.T) {
	_, err := renderArgs(Args{{Name: "bad", Value: make(chan int)}})
	if err == nil {
		t.Fatal("renderArgs() with a channel value: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported argument type") {
		t.Errorf("renderArgs() error = %v, want unsupported argument type", err)
	}
}

// Test_renderArgs_StringEscaping verifies that strings containing quotes and
// backslashes survive a round trip through a standard JSON unescaper.
func Test_renderArgs_StringEscaping(t *testing.T) {
	inputs := []string{
		`plain`,
		`with "embedded" quotes`,
		`back\slash`,
		`both "q" and \b\`,
		"tab\tand\nnewline",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			rendered, err := renderArgs(Args{{Name: "name", Value: input}})
			if err != nil {
				t.Fatalf("renderArgs() error = %v", err)
			}

			literal := strings.TrimSuffix(strings.TrimPrefix(rendered, "(name: "), ")")
			var back string
			if err := json.Unmarshal([]byte(literal), &back); err != nil {
				t.Fatalf("unescape %q: %v", literal, err)
			}
			if back != input {
				t.Errorf("round trip = %q, want %q", back, input)
			}
		})
	}
}

// Test_renderArgs_PrimitiveRoundTrip re-splits rendered scalar args on
// top-level commas and checks the key set survives.
func Test_renderArgs_PrimitiveRoundTrip(t *testing.T) {
	args := Args{
		{Name: "board_id", Value: 42},
		{Name: "title", Value: "hello, world"},
		{Name: "active", Value: true},
	}

	rendered, err := renderArgs(args)
	if err != nil {
		t.Fatalf("renderArgs() error = %v", err)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(rendered, "("), ")")
	var keys []string
	depth, inString := 0, false
	start := 0
	flush := func(end int) {
		pair := strings.TrimSpace(inner[start:end])
		keys = append(keys, strings.SplitN(pair, ":", 2)[0])
	}
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '"':
			if i == 0 || inner[i-1] != '\\' {
				inString = !inString
			}
		case '{', '[':
			if !inString {
				depth++
			}
		case '}', ']':
			if !inString {
				depth--
			}
		case ',':
			if !inString && depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(inner))

	want := []string{"board_id", "title", "active"}
	if len(keys) != len(want) {
		t.Fatalf("split keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
