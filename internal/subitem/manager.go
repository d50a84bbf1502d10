package subitem

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

var subitemSelection = []monday.Field{
	{Name: "id"},
	{Name: "name"},
	{Name: "state"},
	{Name: "created_at"},
	{Name: "column_values", Sub: monday.Fields("id", "text", "value")},
}

// List queries the subitems of a parent item. Subitems hang off the items
// query.
func (m *GraphQLManager) List(ctx context.Context, parentItemID int64) ([]Subitem, error) {
	if parentItemID <= 0 {
		return nil, fmt.Errorf("subitems list: parent item id is required")
	}

	selection := []monday.Field{{Name: "subitems", Sub: subitemSelection}}
	body, err := m.api.Execute(ctx, monday.OpQuery, "items",
		monday.Args{{Name: "ids", Value: []int64{parentItemID}}}, selection)
	if err != nil {
		return nil, fmt.Errorf("subitems list: %w", err)
	}

	var items []struct {
		Subitems []Subitem `json:"subitems"`
	}
	if err := monday.Decode(&items, monday.Dig(body, "data", "items")); err != nil {
		return nil, fmt.Errorf("subitems list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0].Subitems, nil
}

// Create executes the create_subitem mutation.
func (m *GraphQLManager) Create(ctx context.Context, parentItemID int64, name string, columnValues map[string]any) (*Subitem, error) {
	if parentItemID <= 0 {
		return nil, fmt.Errorf("subitem create: parent item id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("subitem create: name is required")
	}

	args := monday.Args{
		{Name: "parent_item_id", Value: parentItemID},
		{Name: "item_name", Value: name},
	}
	if len(columnValues) > 0 {
		args = append(args, monday.Arg{Name: "column_values", Value: columnValues})
	}

	body, err := m.api.Execute(ctx, monday.OpMutation, "create_subitem", args, subitemSelection)
	if err != nil {
		return nil, fmt.Errorf("subitem create: %w", err)
	}

	var created Subitem
	if err := monday.Decode(&created, monday.Dig(body, "data", "create_subitem")); err != nil {
		return nil, fmt.Errorf("subitem create: %w", err)
	}
	return &created, nil
}
