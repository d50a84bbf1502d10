package activitylog

import (
	"context"
	"fmt"

	"github.com/boardkit/monday-mcp/monday"
)

// Compile-time interface check.
var _ Manager = (*GraphQLManager)(nil)

// GraphQLManager implements Manager against the monday.com API.
type GraphQLManager struct {
	api monday.API
}

// NewGraphQLManager returns a GraphQLManager backed by the provided client.
func NewGraphQLManager(api monday.API) *GraphQLManager {
	if api == nil {
		panic("monday api must not be nil")
	}
	return &GraphQLManager{api: api}
}

// boardsResponse is the JSON wrapper for the nested activity log query.
type boardsResponse []struct {
	ActivityLogs []Entry `json:"activity_logs"`
}

// List queries the activity logs of a single board. Activity logs hang off
// the boards query, so the request selects a nested activity_logs field
// with the window and paging arguments attached to it.
func (m *GraphQLManager) List(ctx context.Context, boardID int64, opts ListOptions) ([]Entry, error) {
	logArgs := monday.Args{}
	if opts.From != "" {
		logArgs = append(logArgs, monday.Arg{Name: "from", Value: opts.From})
	}
	if opts.To != "" {
		logArgs = append(logArgs, monday.Arg{Name: "to", Value: opts.To})
	}
	if opts.Limit > 0 {
		logArgs = append(logArgs, monday.Arg{Name: "limit", Value: opts.Limit})
	}
	if opts.Page > 0 {
		logArgs = append(logArgs, monday.Arg{Name: "page", Value: opts.Page})
	}

	selection := []monday.Field{
		{
			Name: "activity_logs",
			Args: logArgs,
			Sub:  monday.Fields("id", "event", "entity", "user_id", "account_id", "created_at", "data"),
		},
	}

	body, err := m.api.Execute(ctx, monday.OpQuery, "boards",
		monday.Args{{Name: "ids", Value: []int64{boardID}}}, selection)
	if err != nil {
		return nil, fmt.Errorf("activity logs list: %w", err)
	}

	var boards boardsResponse
	if err := monday.Decode(&boards, monday.Dig(body, "data", "boards")); err != nil {
		return nil, fmt.Errorf("activity logs list: %w", err)
	}
	if len(boards) == 0 {
		return nil, nil
	}
	return boards[0].ActivityLogs, nil
}
