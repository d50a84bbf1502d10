package monday

import (
	"errors"
	"testing"
)

// Test_Build_CreateItem is the end-to-end composition check: native literals
// for plain args, an escaped JSON string for column_values, and the
// selection braces in place.
func Test_Build_CreateItem(t *testing.T) {
	args := Args{
		{Name: "board_id", Value: 123},
		{Name: "item_name", Value: "Task"},
		{Name: "column_values", Value: map[string]any{
			"status": map[string]any{"label": "Done"},
		}},
	}

	got, err := Build(OpMutation, "create_item", args, Fields("id", "name"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := `mutation{create_item(board_id: 123, item_name: "Task", column_values: "{\"status\":{\"label\":\"Done\"}}"){id name}}`
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func Test_Build_Cases(t *testing.T) {
	tests := []struct {
		name      string
		op        Op
		fieldName string
		args      Args
		selection []Field
		want      string
		wantErr   bool
	}{
		{
			name:      "query with no args omits parens",
			op:        OpQuery,
			fieldName: "account",
			selection: Fields("id", "name"),
			want:      "query{account{id name}}",
		},
		{
			name:      "query with args",
			op:        OpQuery,
			fieldName: "boards",
			args:      Args{{Name: "ids", Value: []int{7}}},
			selection: Fields("id"),
			want:      "query{boards(ids: [7]){id}}",
		},
		{
			name:      "empty selection is an error",
			op:        OpQuery,
			fieldName: "boards",
			wantErr:   true,
		},
		{
			name:      "unknown operation kind is an error",
			op:        Op("subscription"),
			fieldName: "boards",
			selection: Fields("id"),
			wantErr:   true,
		},
		{
			name:      "empty field name is an error",
			op:        OpQuery,
			selection: Fields("id"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.op, tt.fieldName, tt.args, tt.selection)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_Build_EmptySelectionSentinel(t *testing.T) {
	_, err := Build(OpQuery, "boards", nil, nil)
	if !errors.Is(err, ErrEmptySelection) {
		t.Errorf("Build() error = %v, want ErrEmptySelection", err)
	}
}

func Test_BuildScalar(t *testing.T) {
	got, err := BuildScalar(OpMutation, "update_board", Args{
		{Name: "board_id", Value: 123},
		{Name: "board_attribute", Value: Enum("description")},
		{Name: "new_value", Value: "a new description"},
	})
	if err != nil {
		t.Fatalf("BuildScalar() error = %v", err)
	}

	want := `mutation{update_board(board_id: 123, board_attribute: description, new_value: "a new description")}`
	if got != want {
		t.Errorf("BuildScalar() = %q, want %q", got, want)
	}
}
