package item

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

var itemSelection = []monday.Field{
	{Name: "id"},
	{Name: "name"},
	{Name: "state"},
	{Name: "created_at"},
	{Name: "group", Sub: monday.Fields("id", "title")},
	{Name: "column_values", Sub: monday.Fields("id", "text", "value")},
}

// Query fetches items by id.
func (m *GraphQLManager) Query(ctx context.Context, itemIDs []int64) ([]Item, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("items query: at least one item id is required")
	}

	body, err := m.api.Execute(ctx, monday.OpQuery, "items",
		monday.Args{{Name: "ids", Value: itemIDs}}, itemSelection)
	if err != nil {
		return nil, fmt.Errorf("items query: %w", err)
	}

	var items []Item
	if err := monday.Decode(&items, monday.Dig(body, "data", "items")); err != nil {
		return nil, fmt.Errorf("items query: %w", err)
	}
	return items, nil
}

// Create executes the create_item mutation. Column values are passed as a
// native Go map and serialized into the JSON-encoded column_values blob by
// the query builder.
func (m *GraphQLManager) Create(ctx context.Context, boardID int64, name string, opts CreateOptions) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item create: name is required")
	}

	args := monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "item_name", Value: name},
	}
	if opts.GroupID != "" {
		args = append(args, monday.Arg{Name: "group_id", Value: opts.GroupID})
	}
	if len(opts.ColumnValues) > 0 {
		args = append(args, monday.Arg{Name: "column_values", Value: opts.ColumnValues})
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_item", args, monday.Fields("id", "name"))
	if err != nil {
		return nil, fmt.Errorf("item create: %w", err)
	}

	var created Item
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_item")); err != nil {
		return nil, fmt.Errorf("item create: %w", err)
	}
	return &created, nil
}

// Duplicate executes the duplicate_item mutation.
func (m *GraphQLManager) Duplicate(ctx context.Context, boardID, itemID int64, withUpdates bool) (*Item, error) {
	body, err := m.api.Execute(ctx, monday.OpMutation, "duplicate_item", monday.Args{
		{Name: "board_id", Value: boardID},
		{Name: "item_id", Value: itemID},
		{Name: "with_updates", Value: withUpdates},
	}, monday.Fields("id", "name"))
	if err != nil {
		return nil, fmt.Errorf("item duplicate: %w", err)
	}

	var dup Item
	if err := monday.Decode(&dup, monday.Dig(body, "data", "duplicate_item")); err != nil {
		return nil, fmt.Errorf("item duplicate: %w", err)
	}
	return &dup, nil
}

// Archive executes the archive_item mutation.
func (m *GraphQLManager) Archive(ctx context.Context, itemID int64) (*Item, error) {
	return m.idMutation(ctx, "archive_item", itemID)
}

// Delete executes the delete_item mutation. Deletion is irreversible on the
// remote side.
func (m *GraphQLManager) Delete(ctx context.Context, itemID int64) (*Item, error) {
	return m.idMutation(ctx, "delete_item", itemID)
}

func (m *GraphQLManager) idMutation(ctx context.Context, fieldName string, itemID int64) (*Item, error) {
	body, err := m.api.Execute(ctx, monday.OpMutation, fieldName,
		monday.Args{{Name: "item_id", Value: itemID}}, monday.Fields("id", "state"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}

	var it Item
	if err := monday.Decode(&it, monday.Dig(body, "data", fieldName)); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldName, err)
	}
	return &it, nil
}
