package file

import (
	"context"
	"fmt"
	"io"
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

const assetSelection = "id name url file_size created_at"

// filePart is the multipart part name the API maps to the $file variable.
const filePart = "variables[file]"

func validateUpload(name string, content io.Reader) error {
	if name == "" {
		return fmt.Errorf("file name is required")
	}
	if content == nil {
		return fmt.Errorf("file content is required")
	}
	return nil
}

// AddToUpdate executes the add_file_to_update mutation. Upload mutations
// take the file as a multipart variable, so the query is built as text
// with a $file placeholder instead of inline arguments.
func (m *GraphQLManager) AddToUpdate(ctx context.Context, updateID int64, name string, content io.Reader) (*Asset, error) {
	if updateID <= 0 {
		return nil, fmt.Errorf("file add to update: update id is required")
	}
	if err := validateUpload(name, content); err != nil {
		return nil, fmt.Errorf("file add to update: %w", err)
	}

	query := fmt.Sprintf("mutation($file: File!){add_file_to_update(update_id: %d, file: $file){%s}}",
		updateID, assetSelection)

	body, err := m.api.ExecuteUpload(ctx, query, map[string]monday.File{
		filePart: {Name: name, Reader: content},
	})
	if err != nil {
		return nil, fmt.Errorf("file add to update: %w", err)
	}

	var asset Asset
	if err := monday.Decode(&asset, monday.Dig(body, "data", "add_file_to_update")); err != nil {
		return nil, fmt.Errorf("file add to update: %w", err)
	}
	return &asset, nil
}

// AddToColumn executes the add_file_to_column mutation against a file-type
// column.
func (m *GraphQLManager) AddToColumn(ctx context.Context, itemID int64, columnID, name string, content io.Reader) (*Asset, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("file add to column: item id is required")
	}
	if columnID == "" || strings.ContainsAny(columnID, `"'\`) {
		return nil, fmt.Errorf("file add to column: invalid column id %q", columnID)
	}
	if err := validateUpload(name, content); err != nil {
		return nil, fmt.Errorf("file add to column: %w", err)
	}

	query := fmt.Sprintf("mutation($file: File!){add_file_to_column(item_id: %d, column_id: %q, file: $file){%s}}",
		itemID, columnID, assetSelection)

	body, err := m.api.ExecuteUpload(ctx, query, map[string]monday.File{
		filePart: {Name: name, Reader: content},
	})
	if err != nil {
		return nil, fmt.Errorf("file add to column: %w", err)
	}

	var asset Asset
	if err := monday.Decode(&asset, monday.Dig(body, "data", "add_file_to_column")); err != nil {
		return nil, fmt.Errorf("file add to column: %w", err)
	}
	return &asset, nil
}
