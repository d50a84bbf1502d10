package activitylog

import (
	"context"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ActivityLogTools returns the tool registrations for activity log reads.
func ActivityLogTools(mgr Manager, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{toolActivityLogList(mgr, audit)}
}

func toolActivityLogList(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "activity_log_list"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List the activity log of a board, optionally restricted to an ISO8601 time window."),
		mcp.WithNumber("board_id",
			mcp.Required(),
			mcp.Description("Board ID whose activity log to read"),
		),
		mcp.WithString("from", mcp.Description("Window start, ISO8601 (optional)")),
		mcp.WithString("to", mcp.Description("Window end, ISO8601 (optional)")),
		mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default: 25)")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		boardID := int64(req.GetInt("board_id", 0))
		opts := ListOptions{
			From:  req.GetString("from", ""),
			To:    req.GetString("to", ""),
			Limit: req.GetInt("limit", 25),
		}

		params := map[string]any{"board_id": boardID, "from": opts.From, "to": opts.To}
		resource := fmt.Sprintf("board %d", boardID)

		if boardID <= 0 {
			tools.LogAudit(audit, toolName, resource, params, "error: missing board_id", start)
			return tools.ErrorText("board_id is required"), nil
		}

		entries, err := mgr.List(ctx, boardID, opts)
		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		if len(entries) == 0 {
			return mcp.NewToolResultText("No activity log entries found."), nil
		}
		return tools.JSONResult(entries), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
