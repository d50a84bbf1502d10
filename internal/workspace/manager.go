package workspace

import (
	"context"
	"fmt"

	"github.com/boardkit/monday-mcp/monday"
)

// Compile-time interface check.
var _ Manager = (*GraphQLManager)(nil)

// GraphQLManager implements Manager against the monday.com API.
type GraphQLManager struct {
	api monday.API
}

// NewGraphQLManager returns a GraphQLManager backed by the provided client.
func NewGraphQLManager(api monday.API) *GraphQLManager {
	if api == nil {
		panic("monday api must not be nil")
	}
	return &GraphQLManager{api: api}
}

var workspaceSelection = monday.Fields("id", "name", "kind", "description")

var validWorkspaceKinds = map[string]struct{}{
	"open":   {},
	"closed": {},
}

// List queries workspaces with optional paging. Zero-valued paging
// arguments are omitted from the query.
func (m *GraphQLManager) List(ctx context.Context, limit, page int) ([]Workspace, error) {
	args := monday.Args{}
	if limit > 0 {
		args = append(args, monday.Arg{Name: "limit", Value: limit})
	}
	if page > 0 {
		args = append(args, monday.Arg{Name: "page", Value: page})
	}

	body, err := m.api.Execute(ctx, monday.OpQuery, "workspaces", args, workspaceSelection)
	if err != nil {
		return nil, fmt.Errorf("workspaces list: %w", err)
	}

	var workspaces []Workspace
	if err := monday.Decode(&workspaces, monday.Dig(body, "data", "workspaces")); err != nil {
		return nil, fmt.Errorf("workspaces list: %w", err)
	}
	return workspaces, nil
}

// Create executes the create_workspace mutation.
func (m *GraphQLManager) Create(ctx context.Context, name, kind, description string) (*Workspace, error) {
	if name == "" {
		return nil, fmt.Errorf("workspace create: name is required")
	}
	if _, ok := validWorkspaceKinds[kind]; !ok {
		return nil, fmt.Errorf("workspace create: invalid kind %q (valid: open, closed)", kind)
	}

	args := monday.Args{
		{Name: "name", Value: name},
		{Name: "kind", Value: monday.Enum(kind)},
	}
	if description != "" {
		args = append(args, monday.Arg{Name: "description", Value: description})
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_workspace", args, workspaceSelection)
	if err != nil {
		return nil, fmt.Errorf("workspace create: %w", err)
	}

	var created Workspace
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_workspace")); err != nil {
		return nil, fmt.Errorf("workspace create: %w", err)
	}
	return &created, nil
}

// Delete executes the delete_workspace mutation.
func (m *GraphQLManager) Delete(ctx context.Context, workspaceID int64) (*Workspace, error) {
	if workspaceID <= 0 {
		return nil, fmt.Errorf("workspace delete: workspace id is required")
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "delete_workspace", monday.Args{
		{Name: "workspace_id", Value: workspaceID},
	}, monday.Fields("id"))
	if err != nil {
		return nil, fmt.Errorf("workspace delete: %w", err)
	}

	var deleted Workspace
	if err := monday.Decode(&deleted, monday.Dig(body, "data", "delete_workspace")); err != nil {
		return nil, fmt.Errorf("workspace delete: %w", err)
	}
	return &deleted, nil
}
