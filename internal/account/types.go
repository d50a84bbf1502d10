// Package account exposes the monday.com account the configured token
// belongs to.
package account

import "context"

// Account describes the authenticated account.
type Account struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Tier        string `json:"tier"`
	CountryCode string `json:"country_code"`
	Plan        *Plan  `json:"plan"`
}

// Plan describes the account's subscription plan.
type Plan struct {
	Tier    string `json:"tier"`
	Period  string `json:"period"`
	Version int    `json:"version"`
}

// Manager defines the interface for account operations.
type Manager interface {
	Get(ctx context.Context) (*Account, error)
}
