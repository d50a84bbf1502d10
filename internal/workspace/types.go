// Package workspace provides workspace management against the monday.com
// API.
package workspace

import "context"

// Workspace describes a monday.com workspace.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Manager defines the interface for workspace operations.
type Manager interface {
	List(ctx context.Context, limit, page int) ([]Workspace, error)
	// Create makes a new workspace. kind is open or closed.
	Create(ctx context.Context, name, kind, description string) (*Workspace, error)
	Delete(ctx context.Context, workspaceID int64) (*Workspace, error)
}
