package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"

	"runwear/internal/shared/storage/object"
)

// Store implements AssetStore over a filesystem tree.
type Store struct {
	fsys fs.FS
}

// New creates a store rooted at fsys, typically an embedded FS.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDir creates a store rooted at a directory on disk.
func NewDir(dir string) *Store {
	return New(os.DirFS(dir))
}

// Open opens the asset stored under key.
func (s *Store) Open(ctx context.Context, key string) (object.Object, error) {
	if err := ctx.Err(); err != nil {
		return object.Object{}, err
	}

	clean, err := object.CleanKey(key)
	if err != nil {
		return object.Object{}, err
	}

	f, err := s.fsys.Open(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return object.Object{}, object.ErrNotFound
		}
		return object.Object{}, fmt.Errorf("open asset %s: %w", clean, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return object.Object{}, fmt.Errorf("stat asset %s: %w", clean, err)
	}
	if info.IsDir() {
		f.Close()
		return object.Object{}, object.ErrNotFound
	}

	return object.Object{
		Body:        f,
		ContentType: contentType(clean),
		Size:        info.Size(),
	}, nil
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

var _ object.AssetStore = (*Store)(nil)
