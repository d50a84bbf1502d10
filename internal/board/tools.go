package board

import (
	"context"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists board tool names that require confirmation before
// execution.
var DestructiveTools = []string{"board_manage"}

// BoardTools returns the tool registrations for board management. The
// filter hides boards whose names are not permitted by the server's
// safety configuration.
func BoardTools(mgr Manager, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolBoardList(mgr, filter, audit),
		toolBoardCreate(mgr, filter, audit),
		toolBoardManage(mgr, filter, confirm, audit),
	}
}

func toolBoardList(mgr Manager, filter *safety.Filter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "board_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List monday.com boards visible to the configured token."),
		mcp.WithNumber("limit", mcp.Description("Maximum boards to return (default: 25)")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		limit := req.GetInt("limit", 25)
		page := req.GetInt("page", 0)
		params := map[string]any{"limit": limit, "page": page}

		boards, err := mgr.List(ctx, limit, page)
		if err != nil {
			tools.LogAudit(audit, toolName, "", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		visible := boards[:0:0]
		for _, b := range boards {
			if filter.IsAllowed(b.Name) {
				visible = append(visible, b)
			}
		}

		tools.LogAudit(audit, toolName, "", params, "ok", start)
		if len(visible) == 0 {
			return mcp.NewToolResultText("No boards found."), nil
		}
		return tools.JSONResult(visible), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolBoardCreate(mgr Manager, filter *safety.Filter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "board_create"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Create a monday.com board."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Board name"),
		),
		mcp.WithString("kind", mcp.Description("Board kind: public (default), private, or share")),
		mcp.WithString("description", mcp.Description("Board description (optional)")),
		mcp.WithNumber("workspace_id", mcp.Description("Workspace to create the board in (optional)")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		name := req.GetString("name", "")
		kind := req.GetString("kind", "public")
		params := map[string]any{"name": name, "kind": kind}

		if !filter.IsAllowed(name) {
			msg := fmt.Sprintf("board name %q is not permitted by the server's safety configuration", name)
			tools.LogAudit(audit, toolName, name, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}

		created, err := mgr.Create(ctx, name, kind, CreateOptions{
			Description: req.GetString("description", ""),
			WorkspaceID: int64(req.GetInt("workspace_id", 0)),
		})
		if err != nil {
			tools.LogAudit(audit, toolName, name, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, created.Name, params, "ok", start)
		return tools.JSONResult(created), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// destructiveActions is the set of board actions that require a
// confirmation token.
var destructiveActions = map[string]struct{}{
	"archive": {},
	"delete":  {},
}

func toolBoardManage(mgr Manager, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "board_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage a monday.com board. Supports update (name/description/communication), duplicate, archive, and delete. Archive and delete require a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: update, duplicate, archive, delete"),
		),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board ID"),
		),
		mcp.WithString("attribute", mcp.Description("Attribute for update: name, description, or communication")),
		mcp.WithString("new_value", mcp.Description("New attribute value for update")),
		mcp.WithString("duplicate_type", mcp.Description("For duplicate: duplicate_board_with_structure (default), duplicate_board_with_pulses, duplicate_board_with_pulses_and_updates")),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for destructive actions")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		boardID := int64(req.GetInt("board_id", 0))
		token := req.GetString("confirmation_token", "")

		params := map[string]any{"action": action, "board_id": boardID}
		resource := fmt.Sprintf("board %d", boardID)

		validActions := map[string]struct{}{
			"update":    {},
			"duplicate": {},
			"archive":   {},
			"delete":    {},
		}
		if _, ok := validActions[action]; !ok {
			msg := fmt.Sprintf("unknown action %q: valid actions are update, duplicate, archive, delete", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		if boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required"), nil
		}

		// Destructive actions are gated on the board actually being
		// visible through the safety filter, then on a confirmation
		// token.
		if _, isDestructive := destructiveActions[action]; isDestructive {
			current, err := mgr.Get(ctx, boardID)
			if err != nil {
				tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err), nil
			}
			if !filter.IsAllowed(current.Name) {
				msg := fmt.Sprintf("board %q is not permitted by the server's safety configuration", current.Name)
				tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
				return tools.ErrorText(msg), nil
			}
			if !confirm.Confirm(token) {
				desc := fmt.Sprintf("This will %s board %q. Deleting a board cannot be undone.", action, current.Name)
				return tools.ConfirmPrompt(confirm, toolName, current.Name, desc), nil
			}
		}

		var result any
		var err error
		switch action {
		case "update":
			result, err = mgr.UpdateAttribute(ctx, boardID,
				req.GetString("attribute", ""), req.GetString("new_value", ""))
		case "duplicate":
			result, err = mgr.Duplicate(ctx, boardID,
				req.GetString("duplicate_type", "duplicate_board_with_structure"))
		case "archive":
			result, err = mgr.Archive(ctx, boardID)
		case "delete":
			result, err = mgr.Delete(ctx, boardID)
		}

		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
