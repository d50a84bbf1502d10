package board

import (
	"context"
	"strings"
	"testing"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeManager returns canned results per method.
type fakeManager struct {
	boards    []Board
	board     *Board
	deleted   *Board
	deleteErr error
	calls     []string
}

func (f *fakeManager) List(ctx context.Context, limit, page int) ([]Board, error) {
	f.calls = append(f.calls, "list")
	return f.boards, nil
}

func (f *fakeManager) Get(ctx context.Context, boardID int64) (*Board, error) {
	f.calls = append(f.calls, "get")
	return f.board, nil
}

func (f *fakeManager) Create(ctx context.Context, name, kind string, opts CreateOptions) (*Board, error) {
	f.calls = append(f.calls, "create")
	return &Board{ID: "1", Name: name, BoardKind: kind}, nil
}

func (f *fakeManager) Duplicate(ctx context.Context, boardID int64, duplicateType string) (*Board, error) {
	f.calls = append(f.calls, "duplicate")
	return f.board, nil
}

func (f *fakeManager) UpdateAttribute(ctx context.Context, boardID int64, attribute, newValue string) (string, error) {
	f.calls = append(f.calls, "update")
	return `{"success":true}`, nil
}

func (f *fakeManager) Archive(ctx context.Context, boardID int64) (*Board, error) {
	f.calls = append(f.calls, "archive")
	return f.board, nil
}

func (f *fakeManager) Delete(ctx context.Context, boardID int64) (*Board, error) {
	f.calls = append(f.calls, "delete")
	return f.deleted, f.deleteErr
}

// Compile-time interface check.
var _ Manager = (*fakeManager)(nil)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func Test_BoardList_FiltersDeniedNames(t *testing.T) {
	mgr := &fakeManager{boards: []Board{
		{ID: "1", Name: "Roadmap"},
		{ID: "2", Name: "HR Salaries"},
	}}
	filter := safety.NewFilter(nil, []string{"HR *"})

	reg := toolBoardList(mgr, filter, nil)
	result, err := reg.Handler(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Roadmap") {
		t.Errorf("allowed board missing from output: %s", text)
	}
	if strings.Contains(text, "HR Salaries") {
		t.Errorf("denied board leaked into output: %s", text)
	}
}

func Test_BoardManage_DeleteRequiresConfirmation(t *testing.T) {
	mgr := &fakeManager{
		board:   &Board{ID: "5", Name: "Roadmap"},
		deleted: &Board{ID: "5", State: "deleted"},
	}
	filter := safety.NewFilter(nil, nil)
	confirm := safety.NewConfirmationTracker(DestructiveTools)

	reg := toolBoardManage(mgr, filter, confirm, nil)

	// First call: no token, so only a prompt comes back and Delete never runs.
	result, err := reg.Handler(context.Background(), callRequest(map[string]any{
		"action":   "delete",
		"board_id": 5,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Confirmation required") {
		t.Fatalf("first call did not prompt: %s", text)
	}
	for _, call := range mgr.calls {
		if call == "delete" {
			t.Fatal("Delete ran without confirmation")
		}
	}

	// Extract the token from the prompt and confirm.
	idx := strings.Index(text, `confirmation_token="`)
	if idx < 0 {
		t.Fatalf("prompt has no token: %s", text)
	}
	token := text[idx+len(`confirmation_token="`):]
	token = token[:strings.Index(token, `"`)]

	result, err = reg.Handler(context.Background(), callRequest(map[string]any{
		"action":             "delete",
		"board_id":           5,
		"confirmation_token": token,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !strings.Contains(resultText(t, result), "deleted") {
		t.Errorf("confirmed delete result = %s", resultText(t, result))
	}
}

func Test_BoardManage_DeleteBlockedByFilter(t *testing.T) {
	mgr := &fakeManager{board: &Board{ID: "5", Name: "HR Salaries"}}
	filter := safety.NewFilter(nil, []string{"HR *"})
	confirm := safety.NewConfirmationTracker(DestructiveTools)

	reg := toolBoardManage(mgr, filter, confirm, nil)
	result, err := reg.Handler(context.Background(), callRequest(map[string]any{
		"action":   "delete",
		"board_id": 5,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "not permitted") {
		t.Errorf("filtered delete result = %s", text)
	}
}

func Test_BoardManage_UnknownAction(t *testing.T) {
	reg := toolBoardManage(&fakeManager{}, safety.NewFilter(nil, nil), safety.NewConfirmationTracker(nil), nil)
	result, err := reg.Handler(context.Background(), callRequest(map[string]any{
		"action":   "explode",
		"board_id": 1,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !strings.Contains(resultText(t, result), "unknown action") {
		t.Errorf("result = %s", resultText(t, result))
	}
}
