package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid file path")
)

// FileStorage stores generated documents (payslips, reports) for later download.
type FileStorage interface {
	// Upload stores the content under path and returns the cleaned path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored document
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored document
	Delete(ctx context.Context, path string) error

	// GetURL returns the URL the console serves the document from
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if a document exists
	Exists(ctx context.Context, path string) (bool, error)
}
