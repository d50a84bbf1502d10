package account

import (
	"context"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AccountTools returns the tool registrations for account operations.
func AccountTools(mgr Manager, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{toolAccountGet(mgr, audit)}
}

func toolAccountGet(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "account_get"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Show the monday.com account the configured API token belongs to, including plan details."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		acct, err := mgr.Get(ctx)
		if err != nil {
			tools.LogAudit(audit, toolName, "", nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, acct.Name, nil, "ok", start)
		return tools.JSONResult(acct), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
