// Package update provides item update (comment) management against the
// monday.com API.
package update

import "context"

// Update describes an update posted to an item.
type Update struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	TextBody  string `json:"text_body"`
	CreatorID string `json:"creator_id"`
	ItemID    string `json:"item_id"`
	CreatedAt string `json:"created_at"`
}

// Manager defines the interface for update operations.
type Manager interface {
	// List returns updates on an item, newest first.
	List(ctx context.Context, itemID int64, limit int) ([]Update, error)
	Create(ctx context.Context, itemID int64, body string) (*Update, error)
	Delete(ctx context.Context, updateID int64) (*Update, error)
}
