// Package tools provides shared helper utilities for MCP tool handlers.
package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boardkit/monday-mcp/internal/safety"
	"github.com/boardkit/monday-mcp/monday"
	"github.com/mark3labs/mcp-go/mcp"
)

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error
// condition, with per-kind guidance when err is a classified API error.
// Rate-limit and complexity failures tell the model to back off rather than
// immediately retry, since the client itself never retries.
func ErrorResult(err error) *mcp.CallToolResult {
	apiErr, ok := monday.AsError(err)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("error: %v", err))
	}

	switch apiErr.Kind {
	case monday.KindAuthorization:
		return mcp.NewToolResultText(fmt.Sprintf(
			"error: the monday.com API rejected the configured token (%s). Check MONDAY_TOKEN.", apiErr.Message))
	case monday.KindRateLimit, monday.KindComplexity:
		return mcp.NewToolResultText(fmt.Sprintf(
			"error: the monday.com complexity/rate budget is exhausted (%s). Wait before retrying.", apiErr.Message))
	case monday.KindResourceNotFound:
		return mcp.NewToolResultText(fmt.Sprintf("error: not found: %s", apiErr.Message))
	default:
		return mcp.NewToolResultText(fmt.Sprintf("error: %v", apiErr))
	}
}

// ErrorText is ErrorResult for callers that only have a message string.
func ErrorText(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// LogAudit logs a tool invocation to the audit logger, silently ignoring a
// nil logger.
func LogAudit(audit *safety.AuditLogger, toolName, resource string, params map[string]any, result string, start time.Time) {
	if audit == nil {
		return
	}
	_ = audit.Log(safety.AuditEntry{
		Timestamp: start,
		Tool:      toolName,
		Resource:  resource,
		Params:    params,
		Result:    result,
		Duration:  time.Since(start),
	})
}

// ConfirmPrompt issues a confirmation request and returns the prompt result.
func ConfirmPrompt(confirm *safety.ConfirmationTracker, toolName, resource, description string) *mcp.CallToolResult {
	token := confirm.RequestConfirmation(toolName, resource, description)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Confirmation required for %s on %q.\n\n%s\n\nTo proceed, call %s again with confirmation_token=%q.",
		toolName, resource, description, toolName, token,
	))
}
