// Package board provides board management against the monday.com API.
package board

import "context"

// Board describes a monday.com board.
type Board struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BoardKind   string `json:"board_kind"`
	State       string `json:"state"`
	Permissions string `json:"permissions"`
}

// CreateOptions holds the optional arguments for Create. Zero values are
// omitted from the mutation.
type CreateOptions struct {
	Description string
	WorkspaceID int64
	FolderID    int64
	// TemplateID duplicates an existing board template into the new board.
	TemplateID int64
}

// Manager defines the interface for board operations.
type Manager interface {
	List(ctx context.Context, limit, page int) ([]Board, error)
	Get(ctx context.Context, boardID int64) (*Board, error)
	Create(ctx context.Context, name, kind string, opts CreateOptions) (*Board, error)
	Duplicate(ctx context.Context, boardID int64, duplicateType string) (*Board, error)
	// UpdateAttribute changes a single board attribute (name, description,
	// communication) and returns the API's opaque JSON-encoded result
	// string; the mutation has no selectable return object.
	UpdateAttribute(ctx context.Context, boardID int64, attribute, newValue string) (string, error)
	Archive(ctx context.Context, boardID int64) (*Board, error)
	Delete(ctx context.Context, boardID int64) (*Board, error)
}
