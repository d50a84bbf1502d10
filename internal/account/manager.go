package account

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

var accountSelection = []monday.Field{
	{Name: "id"},
	{Name: "name"},
	{Name: "slug"},
	{Name: "tier"},
	{Name: "country_code"},
	{Name: "plan", Sub: monday.Fields("tier", "period", "version")},
}

// Get queries the account the configured token belongs to.
func (m *GraphQLManager) Get(ctx context.Context) (*Account, error) {
	body, err := m.api.Execute(ctx, monday.OpQuery, "account", nil, accountSelection)
	if err != nil {
		return nil, fmt.Errorf("account get: %w", err)
	}

	var acct Account
	if err := monday.Decode(&acct, monday.Dig(body, "data", "account")); err != nil {
		return nil, fmt.Errorf("account get: %w", err)
	}
	return &acct, nil
}
