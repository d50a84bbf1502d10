package workspace

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists workspace tool names that require confirmation
// before execution.
var DestructiveTools = []string{"workspace_manage"}

// WorkspaceTools returns the tool registrations for workspace management.
// The filter hides workspaces whose names are not permitted by the
// server's safety configuration.
func WorkspaceTools(mgr Manager, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolWorkspaceList(mgr, filter, audit),
		toolWorkspaceManage(mgr, filter, confirm, audit),
	}
}

func toolWorkspaceList(mgr Manager, filter *safety.Filter, audit *safety.AuditLogger) tools.Registration {
	const toolName = "workspace_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List monday.com workspaces visible to the configured token."),
		mcp.WithNumber("limit", mcp.Description("Maximum workspaces to return (default: 25)")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		limit := req.GetInt("limit", 25)
		page := req.GetInt("page", 0)
		params := map[string]any{"limit": limit, "page": page}

		workspaces, err := mgr.List(ctx, limit, page)
		if err != nil {
			tools.LogAudit(audit, toolName, "", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		visible := workspaces[:0:0]
		for _, ws := range workspaces {
			if filter.IsAllowed(ws.Name) {
				visible = append(visible, ws)
			}
		}

		tools.LogAudit(audit, toolName, "", params, "ok", start)
		if len(visible) == 0 {
			return mcp.NewToolResultText("No workspaces found."), nil
		}
		return tools.JSONResult(visible), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolWorkspaceManage(mgr Manager, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "workspace_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage monday.com workspaces. Supports create and delete. Delete requires a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: create, delete"),
		),
		mcp.WithString("name", mcp.Description("Workspace name (required for create)")),
		mcp.WithString("kind", mcp.Description("Workspace kind for create: open (default) or closed")),
		mcp.WithString("description", mcp.Description("Workspace description for create")),
		mcp.WithNumber("workspace_id", mcp.Description("Workspace ID (required for delete)")),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for delete")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		workspaceID := int64(req.GetInt("workspace_id", 0))
		token := req.GetString("confirmation_token", "")

		params := map[string]any{"action": action, "workspace_id": workspaceID}
		resource := "workspace " + strconv.FormatInt(workspaceID, 10)

		switch action {
		case "create":
			name := req.GetString("name", "")
			params["name"] = name

			if !filter.IsAllowed(name) {
				msg := fmt.Sprintf("workspace name %q is not permitted by the server's safety configuration", name)
				tools.LogAudit(audit, toolName, name, params, "error: "+msg, start)
				return tools.ErrorText(msg), nil
			}

			created, err := mgr.Create(ctx, name,
				req.GetString("kind", "open"), req.GetString("description", ""))
			if err != nil {
				tools.LogAudit(audit, toolName, name, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err), nil
			}

			tools.LogAudit(audit, toolName, created.Name, params, "ok", start)
			return tools.JSONResult(created), nil

		case "delete":
			if workspaceID <= 0 {
				tools.LogAudit(audit, toolName, resource, params, "error: missing workspace_id", start)
				return tools.ErrorText("workspace_id is required"), nil
			}
			if !confirm.Confirm(token) {
				desc := fmt.Sprintf("This will delete workspace %d and cannot be undone.", workspaceID)
				return tools.ConfirmPrompt(confirm, toolName, resource, desc), nil
			}

			deleted, err := mgr.Delete(ctx, workspaceID)
			if err != nil {
				tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err), nil
			}

			tools.LogAudit(audit, toolName, resource, params, "ok", start)
			return tools.JSONResult(deleted), nil

		default:
			msg := fmt.Sprintf("unknown action %q: valid actions are create, delete", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
