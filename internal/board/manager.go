package board

import (
	"context"
	"fmt"

	"github.com/boardkit/monday-mcp/monday"
)

// validBoardKinds is the allowlist of accepted kind values for Create.
var validBoardKinds = map[string]bool{
	"public":  true,
	"private": true,
	"share":   true,
}

// validDuplicateTypes is the allowlist of accepted duplicate_type values.
var validDuplicateTypes = map[string]bool{
	"duplicate_board_with_structure":          true,
	"duplicate_board_with_pulses":             true,
	"duplicate_board_with_pulses_and_updates": true,
}

// validAttributes is the allowlist of board attributes UpdateAttribute may
// change.
var validAttributes = map[string]bool{
	"name":          true,
	"description":   true,
	"communication": true,
}

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

var boardSelection = monday.Fields("id", "name", "description", "board_kind", "state", "permissions")

// List queries boards page by page. Zero limit or page values are omitted,
// letting the API apply its defaults.
func (m *GraphQLManager) List(ctx context.Context, limit, page int) ([]Board, error) {
	args := monday.Args{}
	if limit > 0 {
		args = append(args, monday.Arg{Name: "limit", Value: limit})
	}
	if page > 0 {
		args = append(args, monday.Arg{Name: "page", Value: page})
	}

	body, err := m.api.Execute(ctx, monday.OpQuery, "boards", args, boardSelection)
	if err != nil {
		return nil, fmt.Errorf("boards list: %w", err)
	}

	var boards []Board
	if err := monday.Decode(&boards, monday.Dig(body, "data", "boards")); err != nil {
		return nil, fmt.Errorf("boards list: %w", err)
	}
	return boards, nil
}

// Get queries a single board by id.
func (m *GraphQLManager) Get(ctx context.Context, boardID int64) (*Board, error) {
	body, err := m.api.Execute(ctx, monday.OpQuery, "boards",
		monday.Args{{Name: "ids", Value: []int64{boardID}}}, boardSelection)
	if err != nil {
		return nil, fmt.Errorf("board get: %w", err)
	}

	var boards []Board
	if err := monday.Decode(&boards, monday.Dig(body, "data", "boards")); err != nil {
		return nil, fmt.Errorf("board get: %w", err)
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("board get: board %d not found", boardID)
	}
	return &boards[0], nil
}

// Create executes the create_board mutation. kind must be public, private,
// or share.
func (m *GraphQLManager) Create(ctx context.Context, name, kind string, opts CreateOptions) (*Board, error) {
	if name == "" {
		return nil, fmt.Errorf("board create: name is required")
	}
	if !validBoardKinds[kind] {
		return nil, fmt.Errorf("board create: invalid kind %q: must be public, private, or share", kind)
	}

	args := monday.Args{
		{Name: "board_name", Value: name},
		{Name: "board_kind", Value: monday.Enum(kind)},
	}
	if opts.Description != "" {
		args = append(args, monday.Arg{Name: "description", Value: opts.Description})
	}
	if opts.WorkspaceID > 0 {
		args = append(args, monday.Arg{Name: "workspace_id", Value: opts.WorkspaceID})
	}
	if opts.FolderID > 0 {
		args = append(args, monday.Arg{Name: "folder_id", Value: opts.FolderID})
	}
	if opts.TemplateID > 0 {
		args = append(args, monday.Arg{Name: "template_id", Value: opts.TemplateID})
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_board", args, boardSelection)
	if err != nil {
		return nil, fmt.Errorf("board create: %w", err)
	}

	var created Board
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_board")); err != nil {
		return nil, fmt.Errorf("board create: %w", err)
	}
	return &created, nil
}

// Duplicate executes the duplicate_board mutation. The new board is nested
// under a "board" field in the response.
func (m *GraphQLManager) Duplicate(ctx context.Context, boardID int64, duplicateType string) (*Board, error) {
	if !validDuplicateTypes[duplicateType] {
		return nil, fmt.Errorf("board duplicate: invalid duplicate type %q", duplicateType)
	}

	selection := []monday.Field{{Name: "board", Sub: boardSelection}}
	body, err := m.api.Execute(ctx, monday.OpMutation, "duplicate_board", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "duplicate_type", Value: monday.Enum(duplicateType)},
	}, selection)
	if err != nil {
		return nil, fmt.Errorf("board duplicate: %w", err)
	}

	var dup Board
	if err := monday.Decode(&dup, monday.Dig(body, "data", "duplicate_board", "board")); err != nil {
		return nil, fmt.Errorf("board duplicate: %w", err)
	}
	return &dup, nil
}

// UpdateAttribute executes the update_board mutation. The mutation returns
// a bare JSON-encoded string rather than a selectable object, so this is
// the one call that goes through the selection-less builder.
func (m *GraphQLManager) UpdateAttribute(ctx context.Context, boardID int64, attribute, newValue string) (string, error) {
	if !validAttributes[attribute] {
		return "", fmt.Errorf("board update: invalid attribute %q: must be name, description, or communication", attribute)
	}

	body, err := m.api.ExecuteScalar(ctx, monday.OpMutation, "update_board", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "board_attribute", Value: monday.Enum(attribute)},
		{Name: "new_value", Value: newValue},
	})
	if err != nil {
		return "", fmt.Errorf("board update: %w", err)
	}

	result, ok := monday.Dig(body, "data", "update_board").(string)
	if !ok {
		return "", fmt.Errorf("board update: unexpected result shape")
	}
	return result, nil
}

// Archive executes the archive_board mutation.
func (m *GraphQLManager) Archive(ctx context.Context, boardID int64) (*Board, error) {
	return m.idMutation(ctx, "archive_board", boardID)
}

// Delete executes the delete_board mutation. Deletion is irreversible on
// the remote side.
func (m *GraphQLManager) Delete(ctx context.Context, boardID int64) (*Board, error) {
	return m.idMutation(ctx, "delete_board", boardID)
}

func (m *GraphQLManager) idMutation(ctx context.Context, fieldName string, boardID int64) (*Board, error) {
	body, err := m.api.Execute(ctx, monday.OpMutation, fieldName,
		monday.Args{{Name: "board_id", Value: boardID}}, monday.Fields("id", "state"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}

	var b Board
	if err := monday.Decode(&b, monday.Dig(body, "data", fieldName)); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}
	return &b, nil
}
