package update

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

var updateSelection = monday.Fields("id", "body", "text_body", "creator_id", "item_id", "created_at")

// List queries the updates on an item. Updates hang off the items query.
func (m *GraphQLManager) List(ctx context.Context, itemID int64, limit int) ([]Update, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("updates list: item id is required")
	}

	updatesField := monday.Field{Name: "updates", Sub: updateSelection}
	if limit > 0 {
		updatesField.Args = monday.Args{{Name: "limit", Value: limit}}
	}

	body, err := m.api.Execute(ctx, monday.OpQuery, "items",
		monday.Args{{Name: "ids", Value: []int64{itemID}}},
		[]monday.Field{updatesField})
	if err != nil {
		return nil, fmt.Errorf("updates list: %w", err)
	}

	var items []struct {
		Updates []Update `json:"updates"`
	}
	if err := monday.Decode(&items, monday.Dig(body, "data", "items")); err != nil {
		return nil, fmt.Errorf("updates list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0].Updates, nil
}

// Create executes the create_update mutation.
func (m *GraphQLManager) Create(ctx context.Context, itemID int64, body string) (*Update, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("update create: item id is required")
	}
	if body == "" {
		return nil, fmt.Errorf("update create: body is required")
	}

	resp, err := m.api.Execute(ctx, monday.OpMutation, "create_update", monday.Args{
		{Name: "item_id", Value: itemID},
		{Name: "body", Value: body},
	}, updateSelection)
	if err != nil {
		return nil, fmt.Errorf("update create: %w", err)
	}

	var created Update
	if err := monday.Decode(&created, monday.Dig(resp, "data", "create_update")); err != nil {
		return nil, fmt.Errorf("update create: %w", err)
	}
	return &created, nil
}

// Delete executes the delete_update mutation.
func (m *GraphQLManager) Delete(ctx context.Context, updateID int64) (*Update, error) {
	if updateID <= 0 {
		return nil, fmt.Errorf("update delete: update id is required")
	}

	resp, err := m.api.Execute(ctx, monday.OpMutation, "delete_update", monday.Args{
		{Name: "id", Value: updateID},
	}, monday.Fields("id"))
	if err != nil {
		return nil, fmt.Errorf("update delete: %w", err)
	}

	var deleted Update
	if err := monday.Decode(&deleted, monday.Dig(resp, "data", "delete_update")); err != nil {
		return nil, fmt.Errorf("update delete: %w", err)
	}
	return &deleted, nil
}
