// Package subitem provides subitem management against the monday.com API.
package subitem

import "context"

// Subitem describes a subitem nested under a parent item.
type Subitem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	State        string        `json:"state"`
	CreatedAt    string        `json:"created_at"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// ColumnValue is one cell of a subitem.
type ColumnValue struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Manager defines the interface for subitem operations.
type Manager interface {
	// List returns the subitems of a parent item.
	List(ctx context.Context, parentItemID int64) ([]Subitem, error)
	// Create makes a subitem under the parent item. columnValues, when
	// non-nil, is serialized into the JSON column values blob.
	Create(ctx context.Context, parentItemID int64, name string, columnValues map[string]any) (*Subitem, error)
}
