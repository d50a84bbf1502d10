// Package activitylog reads board activity logs from the monday.com API.
package activitylog

import "context"

// Entry is a single activity log record on a board. Data is an opaque
// JSON-encoded string describing the event payload.
type Entry struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Entity    string `json:"entity"`
	UserID    string `json:"user_id"`
	AccountID string `json:"account_id"`
	CreatedAt string `json:"created_at"`
	Data      string `json:"data"`
}

// ListOptions narrows an activity log query. Zero values are omitted from
// the request. From and To are ISO8601 timestamps.
type ListOptions struct {
	From  string
	To    string
	Limit int
	Page  int
}

// Manager defines the interface for activity log operations.
type Manager interface {
	List(ctx context.Context, boardID int64, opts ListOptions) ([]Entry, error)
}
