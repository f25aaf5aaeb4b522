package assetstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/danphoto/portfolio-api/internal/ports/out/assetstore"
)

// Store is a filesystem implementation of assetstore.Store rooted at one
// directory per resource class. Writes are whole-buffer: concurrent saves to
// the same owner id race last-write-wins but never interleave.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Save(ctx context.Context, ownerID string, data []byte, ext string) error {
	_ = ctx
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create asset dir %s: %w", s.dir, err)
	}
	path := s.path(ownerID, ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write asset %s: %w", path, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, ownerID string) error {
	_ = ctx
	var firstErr error
	for _, ext := range assetstore.Extensions {
		err := os.Remove(s.path(ownerID, ext))
		if err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = fmt.Errorf("remove asset %s: %w", s.path(ownerID, ext), err)
		}
	}
	return firstErr
}

func (s *Store) Serve(ctx context.Context, ownerID string) ([]byte, string, error) {
	_ = ctx
	for _, ext := range assetstore.Extensions {
		data, err := os.ReadFile(s.path(ownerID, ext))
		if err == nil {
			return data, assetstore.ContentType(ext), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read asset %s: %w", s.path(ownerID, ext), err)
		}
	}
	return nil, "", assetstore.ErrNotFound
}

func (s *Store) path(ownerID, ext string) string {
	return filepath.Join(s.dir, ownerID+"."+ext)
}
