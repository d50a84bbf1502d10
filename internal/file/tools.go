package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FileTools returns the tool registrations for file uploads. Uploads are
// additive and not treated as destructive.
func FileTools(mgr Manager, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolFileUpload(mgr, audit),
	}
}

func toolFileUpload(mgr Manager, audit *safety.AuditLogger) tools.Registration {
	const toolName = "file_upload"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Upload a local file to an update or to a file column of an item."),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Upload target: update or column"),
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Local path of the file to upload"),
		),
		mcp.WithNumber("update_id", mcp.Description("Update ID (required when target is update)")),
		mcp.WithNumber("item_id", mcp.Description("Item ID (required when target is column)")),
		mcp.WithString("column_id", mcp.Description("File column ID (required when target is column)")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		target := req.GetString("target", "")
		path := req.GetString("path", "")
		params := map[string]any{"target": target, "path": path}

		if target != "update" && target != "column" {
			msg := fmt.Sprintf("unknown target %q: valid targets are update, column", target)
			tools.LogAudit(audit, toolName, "", params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		if path == "" {
			tools.LogAudit(audit, toolName, "", params, "error: missing path", start)
			return tools.ErrorText("path is required"), nil
		}

		f, err := os.Open(path)
		if err != nil {
			msg := fmt.Sprintf("cannot open %q: %v", path, err)
			tools.LogAudit(audit, toolName, "", params, "error: "+msg, start)
			return tools.ErrorText(msg), nil
		}
		defer func() { _ = f.Close() }()
		name := filepath.Base(path)

		var asset *Asset
		var resource string
		switch target {
		case "update":
			updateID := int64(req.GetInt("update_id", 0))
			params["update_id"] = updateID
			resource = fmt.Sprintf("update %d", updateID)
			asset, err = mgr.AddToUpdate(ctx, updateID, name, f)
		case "column":
			itemID := int64(req.GetInt("item_id", 0))
			columnID := req.GetString("column_id", "")
			params["item_id"] = itemID
			params["column_id"] = columnID
			resource = fmt.Sprintf("item %d column %s", itemID, columnID)
			asset, err = mgr.AddToColumn(ctx, itemID, columnID, name, f)
		}

		if err != nil {
			tools.LogAudit(audit, toolName, resource, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err), nil
		}

		tools.LogAudit(audit, toolName, resource, params, "ok", start)
		return tools.JSONResult(asset), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
