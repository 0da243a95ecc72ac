package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalBucket implements Bucket for a local copy of the collection
type LocalBucket struct {
	root string
}

// NewLocalBucket creates a new Bucket from a local directory
func NewLocalBucket(root string) *LocalBucket {
	return &LocalBucket{root: root}
}

// Name implements Bucket
func (b *LocalBucket) Name() string {
	return b.root
}

// List implements Bucket
func (b *LocalBucket) List(ctx context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(b.root, filepath.FromSlash(prefix)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("LocalBucket.List: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			keys = append(keys, path.Join(prefix, e.Name()))
		}
	}
	return keys, nil
}

// Download implements Bucket
func (b *LocalBucket) Download(ctx context.Context, key string, w io.WriterAt) (int64, error) {
	f, err := os.Open(filepath.Join(b.root, filepath.FromSlash(key)))
	if err != nil {
		return 0, fmt.Errorf("LocalBucket.Download: %w", err)
	}
	defer f.Close()
	n, err := io.Copy(io.NewOffsetWriter(w, 0), f)
	if err != nil {
		return n, fmt.Errorf("LocalBucket.Download[%s]: %w", key, err)
	}
	return n, nil
}
