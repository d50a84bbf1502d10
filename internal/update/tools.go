package update

import (
	"context"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists update tool names that require confirmation before
// execution.
var DestructiveTools = []string{"update_manage"}

// UpdateTools returns the tool registrations for update management.
func UpdateTools(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolUpdateList(mgr, audit),
		toolUpdateManage(mgr, confirm, audit),
	}
}

func toolUpdateList(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "update_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the updates (comments) posted to an item, newest first."),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("Item ID"),
		),
		mcp.WithNumber("limit", mcp.Description("Maximum updates to return (default: 25)")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		itemID := int64(req.GetInt("item_id", 0))
		limit := req.GetInt("limit", 25)
		params := map[string]any{"item_id": itemID, "limit": limit}
		resource := fmt.Sprintf("item %d", itemID)

		if itemID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing item_id", start)
			return tools.ErrorText("item_id is required"), nil
		}

		updates, err := mgr.List(ctx, itemID, limit)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		if len(updates) == 0 {
			return mcp.NewToolResultText("No updates found."), nil
		}
		return tools.JSONResult(updates), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolUpdateManage(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "update_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage item updates. Supports create (post a comment) and delete. Delete requires a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: create, delete"),
		),
		mcp.WithNumber("item_id", mcp.Description("Item ID (required for create)")),
		mcp.WithString("body", mcp.Description("Update body text (required for create)")),
		mcp.WithNumber("update_id", mcp.Description("Update ID (required for delete)")),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for delete")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		token := req.GetString("confirmation_token", "")

		switch action {
		case "create":
			itemID := int64(req.GetInt("item_id", 0))
			params := map[string]any{"action": action, "item_id": itemID}
			resource := fmt.Sprintf("item %d", itemID)

			created, err := mgr.Create(ctx, itemID, req.GetString("body", ""))
			if err != nil {
				tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err), nil
			}

			tools.LogAudit(audit, toolName, resource, params, "ok", start)
			return tools.JSONResult(created), nil

		case "delete":
			updateID := int64(req.GetInt("update_id", 0))
			params := map[string]any{"action": action, "update_id": updateID}
			resource := fmt.Sprintf("update %d", updateID)

			if updateID <= 0 {
				tools.LogAudit(audit, toolName, resource, params, "error: missing update_id", start)
				return tools.ErrorText("update_id is required"), nil
			}
			if !confirm.Confirm(token) {
				desc := fmt.Sprintf("This will delete update %d.", updateID)
				return tools.ConfirmPrompt(confirm, toolName, resource, desc), nil
			}

			deleted, err := mgr.Delete(ctx, updateID)
			if err != nil {
				tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err), nil
			}

			tools.LogAudit(audit, toolName, resource, params, "ok", start)
			return tools.JSONResult(deleted), nil

		default:
			msg := fmt.Sprintf("unknown action %q: valid actions are create, delete", action)
			tools.LogAudit(audit, toolName, "", map[string]any{"action": action}, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
