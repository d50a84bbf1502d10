package column

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists column tool names that require confirmation before
// execution.
var DestructiveTools = []string{"column_manage"}

// ColumnTools returns the tool registrations for column management.
func ColumnTools(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolColumnList(mgr, audit),
		toolColumnManage(mgr, confirm, audit),
	}
}

func toolColumnList(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "column_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the columns of a board, including type and settings."),
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

		columns, err := mgr.List(ctx, boardID)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		if len(columns) == 0 {
			return mcp.NewToolResultText("No columns found."), nil
		}
		return tools.JSONResult(columns), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolColumnManage(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "column_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage board columns. Supports create, change_value (set one cell), and delete. Delete requires a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: create, change_value, delete"),
		),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board ID"),
		),
		mcp.WithString("column_id", mcp.Description("Column ID (required for change_value and delete)")),
		mcp.WithString("title", mcp.Description("Column title (required for create)")),
		mcp.WithString("column_type", mcp.Description("Column type for create: status, text, date, numbers, ...")),
		mcp.WithString("description", mcp.Description("Column description for create")),
		mcp.WithString("defaults", mcp.Description(`Column defaults as JSON for create, e.g. {"labels":{"1":"Done"}}`)),
		mcp.WithNumber("item_id", mcp.Description("Item ID (required for change_value)")),
		mcp.WithString("value", mcp.Description(`New cell value as JSON for change_value, e.g. {"label":"Done"}`)),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for delete")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		boardID := int64(req.GetInt("board_id", 0))
		columnID := req.GetString("column_id", "")
		token := req.GetString("confirmation_token", "")

		params := map[string]any{"action": action, "board_id": boardID, "column_id": columnID}
		resource := fmt.Sprintf("board %d column %s", boardID, columnID)

		validActions := map[string]struct{}{
			"create":       {},
			"change_value": {},
			"delete":       {},
		}
		if _, ok := validActions[action]; !ok {
			msg := fmt.Sprintf("unknown action %q: valid actions are create, change_value, delete", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		if boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required"), nil
		}

		if action == "delete" && !confirm.Confirm(token) {
			desc := fmt.Sprintf("This will delete column %q and all its values on board %d.", columnID, boardID)
			return tools.ConfirmPrompt(confirm, toolName, resource, desc), nil
		}

		var result any
		var err error
		switch action {
		case "create":
			opts := CreateOptions{Description: req.GetString("description", "")}
			if raw := req.GetString("defaults", ""); raw != "" {
				if err := json.Unmarshal([]byte(raw), &opts.Defaults); err != nil {
					msg := fmt.Sprintf("defaults is not valid JSON: %v", err)
					tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
					return tools.ErrorText(msg), nil
				}
			}
			result, err = mgr.Create(ctx, boardID,
				req.GetString("title", ""), req.GetString("column_type", ""), opts)
		case "change_value":
			itemID := int64(req.GetInt("item_id", 0))
			rawValue := req.GetString("value", "")
			var value any
			if err := json.Unmarshal([]byte(rawValue), &value); err != nil {
				msg := fmt.Sprintf("value is not valid JSON: %v", err)
				tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
				return tools.ErrorText(msg), nil
			}
			result, err = mgr.ChangeValue(ctx, boardID, itemID, columnID, value)
		case "delete":
			result, err = mgr.Delete(ctx, boardID, columnID)
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
