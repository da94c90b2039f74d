package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore materializes uploaded listing images and returns their stored
// locations in upload order.
type ImageStore interface {
	Store(ctx context.Context, files []*multipart.FileHeader, ownerID string) ([]string, error)
}

// LocalImageStore writes images under root/<ownerId>/<listingToken>/.
// Tokens are uuids rather than timestamps so concurrent uploads for the same
// owner cannot collide.
type LocalImageStore struct {
	root string
}

// NewLocalImageStore constructs a store rooted at the given directory.
func NewLocalImageStore(root string) *LocalImageStore {
	return &LocalImageStore{root: root}
}

// Store writes each file as <uploadToken>_<originalFilename> inside a fresh
// listing directory. A failed write surfaces immediately; files already
// written in the same invocation are left in place.
func (s *LocalImageStore) Store(_ context.Context, files []*multipart.FileHeader, ownerID string) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to store")
	}

	listingDir := filepath.Join(s.root, ownerID, uuid.NewString())
	if err := os.MkdirAll(listingDir, 0o755); err != nil {
		return nil, fmt.Errorf("create listing directory: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		name := uuid.NewString() + "_" + filepath.Base(file.Filename)
		dst := filepath.Join(listingDir, name)
		if err := saveFile(file, dst); err != nil {
			return nil, fmt.Errorf("store %s: %w", file.Filename, err)
		}
		paths = append(paths, dst)
	}
	return paths, nil
}

func saveFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return err
	}
	return out.Close()
}
