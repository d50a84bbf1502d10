// Package item provides item management against the monday.com API.
package item

import "context"

// Item describes a monday.com item (a board row).
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	State        string        `json:"state"`
	CreatedAt    string        `json:"created_at"`
	Group        *Group        `json:"group"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// Group is the board group an item belongs to.
type Group struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ColumnValue is one cell of an item. Value is the column's raw
// JSON-encoded value; Text is its human-readable rendering.
type ColumnValue struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// CreateOptions holds the optional arguments for Create. ColumnValues is
// rendered as the JSON-encoded column_values blob; GroupID places the item
// in a specific group.
type CreateOptions struct {
	GroupID      string
	ColumnValues map[string]any
}

// Manager defines the interface for item operations.
type Manager interface {
	Query(ctx context.Context, itemIDs []int64) ([]Item, error)
	Create(ctx context.Context, boardID int64, name string, opts CreateOptions) (*Item, error)
	Duplicate(ctx context.Context, boardID, itemID int64, withUpdates bool) (*Item, error)
	Archive(ctx context.Context, itemID int64) (*Item, error)
	Delete(ctx context.Context, itemID int64) (*Item, error)
}
