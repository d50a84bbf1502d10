package column

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

var columnSelection = monday.Fields("id", "title", "type", "description", "settings_str")

func validateColumnID(columnID string) error {
	if columnID == "" {
		return fmt.Errorf("column id is required")
	}
	if strings.ContainsAny(columnID, `"'\`) {
		return fmt.Errorf("invalid column id %q", columnID)
	}
	return nil
}

// List queries the columns of a board. Columns hang off the boards query.
func (m *GraphQLManager) List(ctx context.Context, boardID int64) ([]Column, error) {
	selection := []monday.Field{{Name: "columns", Sub: columnSelection}}
	body, err := m.api.Execute(ctx, monday.OpQuery, "boards",
		monday.Args{{Name: "ids", Value: []int64{boardID}}}, selection)
	if err != nil {
		return nil, fmt.Errorf("columns list: %w", err)
	}

	var boards []struct {
		Columns []Column `json:"columns"`
	}
	if err := monday.Decode(&boards, monday.Dig(body, "data", "boards")); err != nil {
		return nil, fmt.Errorf("columns list: %w", err)
	}
	if len(boards) == 0 {
		return nil, nil
	}
	return boards[0].Columns, nil
}

// Create executes the create_column mutation. columnType is an enum token
// (status, text, date, ...).
func (m *GraphQLManager) Create(ctx context.Context, boardID int64, title, columnType string, opts CreateOptions) (*Column, error) {
	if title == "" {
		return nil, fmt.Errorf("column create: title is required")
	}
	if columnType == "" {
		return nil, fmt.Errorf("column create: column type is required")
	}

	args := monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "title", Value: title},
		{Name: "column_type", Value: monday.Enum(columnType)},
	}
	if opts.Description != "" {
		args = append(args, monday.Arg{Name: "description", Value: opts.Description})
	}
	if len(opts.Defaults) > 0 {
		args = append(args, monday.Arg{Name: "defaults", Value: opts.Defaults})
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_column", args, columnSelection)
	if err != nil {
		return nil, fmt.Errorf("column create: %w", err)
	}

	var created Column
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_column")); err != nil {
		return nil, fmt.Errorf("column create: %w", err)
	}
	return &created, nil
}

// ChangeValue executes the change_column_value mutation. The value travels
// as the JSON-encoded column value blob; the mutation returns the item id
// it changed.
func (m *GraphQLManager) ChangeValue(ctx context.Context, boardID, itemID int64, columnID string, value any) (string, error) {
	if err := validateColumnID(columnID); err != nil {
		return "", fmt.Errorf("column change value: %w", err)
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "change_column_value", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "item_id", Value: itemID},
		{Name: "column_id", Value: columnID},
		{Name: "value", Value: monday.JSON(value)},
	}, monday.Fields("id"))
	if err != nil {
		return "", fmt.Errorf("column change value: %w", err)
	}

	id, ok := monday.Dig(body, "data", "change_column_value", "id").(string)
	if !ok {
		return "", fmt.Errorf("column change value: unexpected result shape")
	}
	return id, nil
}

// Delete executes the delete_column mutation.
func (m *GraphQLManager) Delete(ctx context.Context, boardID int64, columnID string) (*Column, error) {
	if err := validateColumnID(columnID); err != nil {
		return nil, fmt.Errorf("column delete: %w", err)
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "delete_column", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "column_id", Value: columnID},
	}, monday.Fields("id"))
	if err != nil {
		return nil, fmt.Errorf("column delete: %w", err)
	}

	var deleted Column
	if err := monday.Decode(&deleted, monday.Dig(body, "data", "delete_column")); err != nil {
		return nil, fmt.Errorf("column delete: %w", err)
	}
	return &deleted, nil
}
