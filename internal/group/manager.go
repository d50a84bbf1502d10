package group

import (
	"context"
	"fmt"
	"strings"

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

var groupSelection = monday.Fields("id", "title", "color", "position", "archived")

// validateGroupID rejects group ids containing quote or backslash
// characters to keep them safe inside generated query text.
func validateGroupID(groupID string) error {
	if groupID == "" {
		return fmt.Errorf("group id is required")
	}
	if strings.ContainsAny(groupID, `"'\`) {
		return fmt.Errorf("invalid group id %q", groupID)
	}
	return nil
}

// List queries the groups of a board. Groups hang off the boards query.
func (m *GraphQLManager) List(ctx context.Context, boardID int64) ([]Group, error) {
	selection := []monday.Field{{Name: "groups", Sub: groupSelection}}
	body, err := m.api.Execute(ctx, monday.OpQuery, "boards",
		monday.Args{{Name: "ids", Value: []int64{boardID}}}, selection)
	if err != nil {
		return nil, fmt.Errorf("groups list: %w", err)
	}

	var boards []struct {
		Groups []Group `json:"groups"`
	}
	if err := monday.Decode(&boards, monday.Dig(body, "data", "boards")); err != nil {
		return nil, fmt.Errorf("groups list: %w", err)
	}
	if len(boards) == 0 {
		return nil, nil
	}
	return boards[0].Groups, nil
}

// Create executes the create_group mutation.
func (m *GraphQLManager) Create(ctx context.Context, boardID int64, name string) (*Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group create: name is required")
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_group", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "group_name", Value: name},
	}, groupSelection)
	if err != nil {
		return nil, fmt.Errorf("group create: %w", err)
	}

	var created Group
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_group")); err != nil {
		return nil, fmt.Errorf("group create: %w", err)
	}
	return &created, nil
}

// Archive executes the archive_group mutation.
func (m *GraphQLManager) Archive(ctx context.Context, boardID int64, groupID string) (*Group, error) {
	return m.idMutation(ctx, "archive_group", boardID, groupID)
}

// Delete executes the delete_group mutation.
func (m *GraphQLManager) Delete(ctx context.Context, boardID int64, groupID string) (*Group, error) {
	return m.idMutation(ctx, "delete_group", boardID, groupID)
}

func (m *GraphQLManager) idMutation(ctx context.Context, fieldName string, boardID int64, groupID string) (*Group, error) {
	if err := validateGroupID(groupID); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, fieldName, monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "group_id", Value: groupID},
	}, monday.Fields("id", "archived"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}

	var g Group
	if err := monday.Decode(&g, monday.Dig(body, "data", fieldName)); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}
	return &g, nil
}
