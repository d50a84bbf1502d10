package subitem

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

// SubitemTools returns the tool registrations for subitem management.
// Neither tool is destructive.
func SubitemTools(mgr Manager, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolSubitemList(mgr, audit),
		toolSubitemCreate(mgr, audit),
	}
}

func toolSubitemList(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "subitem_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the subitems of an item."),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("Parent item ID"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		itemID := int64(req.GetInt("item_id", 0))
		params := map[string]any{"item_id": itemID}
		resource := fmt.Sprintf("item %d", itemID)

		if itemID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing item_id", start)
			return tools.ErrorText("item_id is required"), nil
		}

		subitems, err := mgr.List(ctx, itemID)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		if len(subitems) == 0 {
			return mcp.NewToolResultText("No subitems found."), nil
		}
		return tools.JSONResult(subitems), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolSubitemCreate(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "subitem_create"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Create a subitem under an item."),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("Parent item ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Subitem name"),
		),
		mcp.WithString("column_values", mcp.Description(`Initial column values as JSON, e.g. {"status":{"label":"Done"}}`)),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		itemID := int64(req.GetInt("item_id", 0))
		name := req.GetString("name", "")
		params := map[string]any{"item_id": itemID, "name": name}
		resource := fmt.Sprintf("item %d", itemID)

		var columnValues map[string]any
		if raw := req.GetString("column_values", ""); raw != "" {
			if err := json.Unmarshal([]byte(raw), &columnValues); err != nil {
				msg := fmt.Sprintf("column_values is not valid JSON: %v", err)
				tools.LogAudit(audit, toolName, resource, params, "error: "+msg, start)
				return tools.ErrorText(msg), nil
			}
		}

		created, err := mgr.Create(ctx, itemID, name, columnValues)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		return tools.JSONResult(created), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
