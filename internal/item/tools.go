package item

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DestructiveTools lists item tool names that require confirmation before
// execution.
var DestructiveTools = []string{"item_manage"}

// ItemTools returns the tool registrations for item management.
func ItemTools(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolItemGet(mgr, audit),
		toolItemCreate(mgr, audit),
		toolItemManage(mgr, confirm, audit),
	}
}

func toolItemGet(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "item_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Fetch monday.com items by ID, including group and column values."),
		mcp.WithString("item_ids",
			mcp.Required(),
			mcp.Description("Comma-separated item IDs"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		raw := req.GetString("item_ids", "")
		ids, err := parseIDList(raw)
		params := map[string]any{"item_ids": raw}
		if err != nil {
			tools.LogAudit(audit, toolName, "", params, "error: "+err.Error(), start)
			return tools.ErrorText(err.Error()), nil
		}

		items, err := mgr.Query(ctx, ids)
		if err != nil {
			tools.LogAudit(audit, toolName, "", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, "", params, "ok", start)
		if len(items) == 0 {
			return mcp.NewToolResultText("No items found."), nil
		}
		return tools.JSONResult(items), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolItemCreate(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "item_create"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Create an item on a board. Column values are given as a JSON object keyed by column id."),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board to create the item on"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Item name"),
		),
		mcp.WithString("group_id", mcp.Description("Group to place the item in (optional)")),
		mcp.WithString("column_values", mcp.Description(`Column values as JSON, e.g. {"status":{"label":"Done"}} (optional)`)),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		boardID := int64(req.GetInt("board_id", 0))
		name := req.GetString("name", "")
		rawValues := req.GetString("column_values", "")

		params := map[string]any{"board_id": boardID, "name": name}
		resource := fmt.Sprintf("board %d", boardID)

		var columnValues map[string]any
		if rawValues != "" {
			if err := json.Unmarshal([]byte(rawValues), &columnValues); err != nil {
				msg := fmt.Sprintf("column_values is not valid JSON: %v", err)
				tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
				return tools.ErrorText(msg), nil
			}
		}

		created, err := mgr.Create(ctx, boardID, name, CreateOptions{
			GroupID:      req.GetString("group_id", ""),
			ColumnValues: columnValues,
		})
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		return tools.JSONResult(created), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// destructiveActions is the set of item actions that require a confirmation
// token.
var destructiveActions = map[string]struct{}{
	"archive": {},
	"delete":  {},
}

func toolItemManage(mgr Manager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	const toolName = "item_manage"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Manage a monday.com item. Supports duplicate, archive, and delete. Archive and delete require a confirmation token."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to perform: duplicate, archive, delete"),
		),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("Item ID"),
		),
		mcp.WithNumber("board_id", mcp.Description("Board ID (required for duplicate)")),
		mcp.WithBoolean("with_updates", mcp.Description("For duplicate: also copy the item's updates")),
		mcp.WithString("confirmation_token", mcp.Description("Confirmation token returned by a prior call for destructive actions")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		action := req.GetString("action", "")
		itemID := int64(req.GetInt("item_id", 0))
		boardID := int64(req.GetInt("board_id", 0))
		token := req.GetString("confirmation_token", "")

		params := map[string]any{"action": action, "item_id": itemID}
		resource := fmt.Sprintf("item %d", itemID)

		validActions := map[string]struct{}{
			"duplicate": {},
			"archive":   {},
			"delete":    {},
		}
		if _, ok := validActions[action]; !ok {
			msg := fmt.Sprintf("unknown action %q: valid actions are duplicate, archive, delete", action)
			tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		if itemID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing item_id", start)
			return tools.ErrorText("item_id is required"), nil
		}
		if action == "duplicate" && boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required for duplicate"), nil
		}

		if _, isDestructive := destructiveActions[action]; isDestructive {
			if !confirm.Confirm(token) {
				desc := fmt.Sprintf("This will %s item %d. Deleting an item cannot be undone.", action, itemID)
				return tools.ConfirmPrompt(confirm, toolName, resource, desc), nil
			}
		}

		var result *Item
		var err error
		switch action {
		case "duplicate":
			result, err = mgr.Duplicate(ctx, boardID, itemID, req.GetBool("with_updates", false))
		case "archive":
			result, err = mgr.Archive(ctx, itemID)
		case "delete":
			result, err = mgr.Delete(ctx, itemID)
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

// parseIDList parses a comma-separated id list into int64s.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, fmt.Errorf("item_ids is required")
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid item id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("item_ids is required")
	}
	return ids, nil
}
