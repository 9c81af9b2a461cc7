package tokenstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Storage is the durable key-value store the token is mirrored into.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// AFSStorage keeps one object per key below a base URL. Any scheme afs
// understands works: file:// for the CLI, mem:// in tests.
type AFSStorage struct {
	fs      afs.Service
	baseURL string
}

// NewAFSStorage returns storage rooted at baseURL.
func NewAFSStorage(baseURL string) *AFSStorage {
	return &AFSStorage{fs: afs.New(), baseURL: baseURL}
}

// DefaultURL points at <user config dir>/mintellifunds.
func DefaultURL() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return "file://" + filepath.ToSlash(filepath.Join(dir, "mintellifunds")), nil
}

func (s *AFSStorage) objectURL(key string) string {
	return url.Join(s.baseURL, key)
}

// Get returns the stored value and whether it exists.
func (s *AFSStorage) Get(ctx context.Context, key string) (string, bool, error) {
	URL := s.objectURL(key)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return "", false, fmt.Errorf("check %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the stored value.
func (s *AFSStorage) Set(ctx context.Context, key, value string) error {
	if err := s.fs.Upload(ctx, s.objectURL(key), 0o600, strings.NewReader(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the stored value; a missing key is not an error.
func (s *AFSStorage) Delete(ctx context.Context, key string) error {
	URL := s.objectURL(key)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("check %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
