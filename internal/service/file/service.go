package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymrepublic/gym-console/internal/pkg/storage"
)

type FileService interface {
	// SaveDocument stores a generated document under exports/<kind>/<date>/
	// and returns its storage path and download URL.
	SaveDocument(ctx context.Context, kind, extension, contentType string, data []byte, at time.Time) (string, string, error)

	OpenDocument(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) SaveDocument(ctx context.Context, kind, extension, contentType string, data []byte, at time.Time) (string, string, error) {
	if kind == "" || strings.ContainsAny(kind, `/\.`) {
		return "", "", fmt.Errorf("%w: document kind %q", storage.ErrInvalidPath, kind)
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	name := uuid.New().String() + extension
	p := path.Join("exports", kind, at.Format("2006-01-02"), name)

	stored, err := s.storage.Upload(ctx, bytes.NewReader(data), p, contentType)
	if err != nil {
		return "", "", fmt.Errorf("failed to store document: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 0)
	if err != nil {
		return "", "", fmt.Errorf("failed to get document URL: %w", err)
	}
	return stored, url, nil
}

func (s *fileServiceImpl) OpenDocument(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
