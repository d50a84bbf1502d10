package file

import (
	"context"
	"strings"
	"testing"

	"github.com/boardkit/monday-mcp/monday"
)

// fakeAPI records the last upload and returns a canned body.
type fakeAPI struct {
	lastQuery string
	lastFiles map[string]monday.File
	body      map[string]any
	err       error
}

func (f *fakeAPI) Execute(ctx context.Context, op monday.Op, fieldName string, args monday.Args, selection []monday.Field) (map[string]any, error) {
	return f.body, f.err
}

func (f *fakeAPI) ExecuteScalar(ctx context.Context, op monday.Op, fieldName string, args monday.Args) (map[string]any, error) {
	return f.body, f.err
}

func (f *fakeAPI) ExecuteUpload(ctx context.Context, query string, files map[string]monday.File) (map[string]any, error) {
	f.lastQuery, f.lastFiles = query, files
	return f.body, f.err
}

// Compile-time interface check.
var _ monday.API = (*fakeAPI)(nil)

func Test_AddToUpdate_BuildsUploadMutation(t *testing.T) {
	api := &fakeAPI{body: map[string]any{
		"data": map[string]any{
			"add_file_to_update": map[string]any{"id": "5", "name": "report.pdf"},
		},
	}}

	mgr := NewGraphQLManager(api)
	asset, err := mgr.AddToUpdate(context.Background(), 42, "report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("AddToUpdate() error = %v", err)
	}

	if asset.ID != "5" || asset.Name != "report.pdf" {
		t.Errorf("AddToUpdate() = %+v", asset)
	}
	if !strings.Contains(api.lastQuery, "add_file_to_update(update_id: 42, file: $file)") {
		t.Errorf("AddToUpdate() query = %q", api.lastQuery)
	}
	if !strings.HasPrefix(api.lastQuery, "mutation($file: File!)") {
		t.Errorf("AddToUpdate() query missing variable declaration: %q", api.lastQuery)
	}
	part, ok := api.lastFiles["variables[file]"]
	if !ok || part.Name != "report.pdf" {
		t.Errorf("AddToUpdate() files = %+v, want variables[file] part", api.lastFiles)
	}
}

func Test_AddToColumn_BuildsUploadMutation(t *testing.T) {
	api := &fakeAPI{body: map[string]any{
		"data": map[string]any{
			"add_file_to_column": map[string]any{"id": "6", "name": "spec.txt"},
		},
	}}

	mgr := NewGraphQLManager(api)
	asset, err := mgr.AddToColumn(context.Background(), 7, "files", "spec.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("AddToColumn() error = %v", err)
	}

	if asset.ID != "6" {
		t.Errorf("AddToColumn() = %+v", asset)
	}
	if !strings.Contains(api.lastQuery, `add_file_to_column(item_id: 7, column_id: "files", file: $file)`) {
		t.Errorf("AddToColumn() query = %q", api.lastQuery)
	}
}

func Test_Upload_Validation(t *testing.T) {
	mgr := NewGraphQLManager(&fakeAPI{})

	if _, err := mgr.AddToUpdate(context.Background(), 0, "a", strings.NewReader("x")); err == nil {
		t.Error("AddToUpdate() with zero update id: expected error")
	}
	if _, err := mgr.AddToUpdate(context.Background(), 1, "", strings.NewReader("x")); err == nil {
		t.Error("AddToUpdate() with empty name: expected error")
	}
	if _, err := mgr.AddToUpdate(context.Background(), 1, "a", nil); err == nil {
		t.Error("AddToUpdate() with nil content: expected error")
	}
	if _, err := mgr.AddToColumn(context.Background(), 1, `fi"les`, "a", strings.NewReader("x")); err == nil {
		t.Error("AddToColumn() with quoted column id: expected error")
	}
}
