package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PhotoStore persists profile photo blobs keyed by user id and returns
// the reference path saved on the User record. Keys are deterministic per
// user, so a re-upload replaces the physical asset.
type PhotoStore interface {
	Save(ctx context.Context, userID uint, ext string, contentType string, body io.Reader) (string, error)
}

// DiskPhotoStore writes photos under a directory that the server exposes
// statically. This is the default backend.
type DiskPhotoStore struct {
	Dir string
}

// NewDiskPhotoStore creates the upload directory if needed.
func NewDiskPhotoStore(dir string) (*DiskPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &DiskPhotoStore{Dir: dir}, nil
}

func (d *DiskPhotoStore) Save(_ context.Context, userID uint, ext string, _ string, body io.Reader) (string, error) {
	name := fmt.Sprintf("user-%d%s", userID, ext)
	dst, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return "", fmt.Errorf("creating photo file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("writing photo file: %w", err)
	}
	return "/" + filepath.ToSlash(filepath.Join(d.Dir, name)), nil
}
