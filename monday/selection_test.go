package monday

import (
	"errors"
	"testing"
)

func Test_renderSelection_Cases(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name:   "flat fields preserve order",
			fields: Fields("id", "name"),
			want:   "id name",
		},
		{
			name: "nested selection expands with braces",
			fields: []Field{
				{Name: "id"},
				{Name: "columns", Sub: Fields("id", "title")},
			},
			want: "id columns{id title}",
		},
		{
			name: "deeply nested selection",
			fields: []Field{
				{Name: "boards", Sub: []Field{
					{Name: "id"},
					{Name: "groups", Sub: Fields("id", "title")},
				}},
			},
			want: "boards{id groups{id title}}",
		},
		{
			name: "inline fragment entry",
			fields: []Field{
				{Name: "id"},
				{Name: "... on StatusValue", Sub: Fields("label")},
			},
			want: "id ... on StatusValue{label}",
		},
		{
			name: "field with arguments",
			fields: []Field{
				{Name: "items_page", Args: Args{{Name: "limit", Value: 5}}, Sub: Fields("cursor")},
			},
			want: "items_page(limit: 5){cursor}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderSelection(tt.fields)
			if err != nil {
				t.Fatalf("renderSelection() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("renderSelection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_renderSelection_Empty(t *testing.T) {
	for _, fields := range [][]Field{nil, {}} {
		if _, err := renderSelection(fields); !errors.Is(err, ErrEmptySelection) {
			t.Errorf("renderSelection(%v) error = %v, want ErrEmptySelection", fields, err)
		}
	}
}

func Test_renderSelection_EmptyNestedIsError(t *testing.T) {
	_, err := renderSelection([]Field{{Name: "columns", Sub: []Field{{}}}})
	if err == nil {
		t.Fatal("renderSelection() with unnamed nested field: expected error")
	}
}
