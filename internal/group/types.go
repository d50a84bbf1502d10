// Package group provides board group management against the monday.com API.
package group

import "context"

// Group describes a group (section) on a board.
type Group struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Position string `json:"position"`
	Archived bool   `json:"archived"`
}

// Manager defines the interface for group operations.
type Manager interface {
	List(ctx context.Context, boardID int64) ([]Group, error)
	Create(ctx context.Context, boardID int64, name string) (*Group, error)
	Archive(ctx context.Context, boardID int64, groupID string) (*Group, error)
	Delete(ctx context.Context, boardID int64, groupID string) (*Group, error)
}
