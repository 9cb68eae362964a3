// Package storage abstracts the blob store that holds user-uploaded media.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the contract for media persistence. Implementations must make
// Put durable before returning so callers can safely persist the returned URL.
type BlobStore interface {
	// Put stores data under key with the given content type and returns the
	// public URL of the stored object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL for a key without touching the store.
	URL(key string) string
	// Invalidate asks any CDN in front of the store to drop its copy.
	Invalidate(ctx context.Context, key string) error
}

// DiskStore stores blobs on the local filesystem under a base directory and
// serves them through the application's media route or a CDN base URL.
type DiskStore struct {
	baseDir string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at baseDir. baseURL is prepended to
// keys when building public URLs, typically "/media" or a CDN origin.
func NewDiskStore(baseDir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *DiskStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	full := filepath.Join(s.baseDir, clean)
	if !strings.HasPrefix(full, s.baseDir) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return full, nil
}

func (s *DiskStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	full, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	// Write to a temp file then rename so a crash never leaves a partial blob
	// behind the public URL.
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to stage blob: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to sync blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close blob: %w", err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to publish blob: %w", err)
	}

	return s.URL(key), nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	full, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *DiskStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// Invalidate is a no-op for local disk, the rename in Put already made the
// latest bytes visible.
func (s *DiskStore) Invalidate(ctx context.Context, key string) error {
	return nil
}
