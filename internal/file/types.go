// Package file provides file upload operations against the monday.com API.
package file

import (
	"context"
	"io"
)

// Asset describes an uploaded file as reported by the API.
type Asset struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	FileSize   int64  `json:"file_size"`
	UploadedAt string `json:"created_at"`
}

// Manager defines the interface for file operations.
type Manager interface {
	// AddToUpdate attaches a file to an update.
	AddToUpdate(ctx context.Context, updateID int64, name string, content io.Reader) (*Asset, error)
	// AddToColumn attaches a file to a file-type column of an item.
	AddToColumn(ctx context.Context, itemID int64, columnID, name string, content io.Reader) (*Asset, error)
}
