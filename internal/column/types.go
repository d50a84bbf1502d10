// Package column provides board column management against the monday.com
// API.
package column

import "context"

// Column describes a board column.
type Column struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	SettingsStr string `json:"settings_str"`
}

// CreateOptions holds the optional arguments for Create. Defaults, when
// set, is serialized into the column's JSON defaults blob.
type CreateOptions struct {
	Description string
	Defaults    map[string]any
}

// Manager defines the interface for column operations.
type Manager interface {
	List(ctx context.Context, boardID int64) ([]Column, error)
	Create(ctx context.Context, boardID int64, title, columnType string, opts CreateOptions) (*Column, error)
	// ChangeValue sets one cell: the value of columnID on itemID. value
	// is serialized into the column's JSON value blob.
	ChangeValue(ctx context.Context, boardID, itemID int64, columnID string, value any) (string, error)
	Delete(ctx context.Context, boardID int64, columnID string) (*Column, error)
}
