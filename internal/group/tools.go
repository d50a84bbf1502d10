package group

import (
	"context"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists group tool names that require confirmation before
// execution.
var DestructiveTools = []string{"group_manage"}

// GroupTools returns the tool registrations for group management.
func GroupTools(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolGroupList(mgr, audit),
		toolGroupManage(mgr, confirm, audit),
	}
}

func toolGroupList(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "group_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the groups of a board."),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board ID"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		boardID := int64(req.GetInt("board_id", 0))
		params := map[string]any{"board_id": boardID}
		resource := fmt.Sprintf("board %d", boardID)

		if boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required"), nil
		}

		groups, err := mgr.List(ctx, boardID)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		if len(groups) == 0 {
			return mcp.NewToolResultText("No groups found."), nil
		}
		return tools.JSONResult(groups), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// destructiveActions is the set of group actions that require a
// confirmation token.
var destructiveActions = map[string]struct{}{
	"archive": {},
	"delete":  {},
}

func toolGroupManage(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "group_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage board groups. Supports create, archive, and delete. Archive and delete require a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: create, archive, delete"),
		),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board ID"),
		),
		mcp.WithString("group_id", mcp.Description("Group ID (required for archive and delete)")),
		mcp.WithString("name", mcp.Description("Group name (required for create)")),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for destructive actions")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		boardID := int64(req.GetInt("board_id", 0))
		groupID := req.GetString("group_id", "")
		token := req.GetString("confirmation_token", "")

		params := map[string]any{"action": action, "board_id": boardID, "group_id": groupID}
		resource := fmt.Sprintf("board %d group %s", boardID, groupID)

		validActions := map[string]struct{}{
			"create":  {},
			"archive": {},
			"delete":  {},
		}
		if _, ok := validActions[action]; !ok {
			msg := fmt.Sprintf("unknown action %q: valid actions are create, archive, delete", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		if boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required"), nil
		}
		if action != "create" && groupID == "" {
			msg := fmt.Sprintf("action %q requires a group_id parameter", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}

		if _, isDestructive := destructiveActions[action]; isDestructive {
			if !confirm.Confirm(token) {
				desc := fmt.Sprintf("This will %s group %q on board %d.", action, groupID, boardID)
				return tools.ConfirmPrompt(confirm, toolName, resource, desc), nil
			}
		}

		var result *Group
		var err error
		switch action {
		case "create":
			result, err = mgr.Create(ctx, boardID, req.GetString("name", ""))
		case "archive":
			result, err = mgr.Archive(ctx, boardID, groupID)
		case "delete":
			result, err = mgr.Delete(ctx, boardID, groupID)
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
