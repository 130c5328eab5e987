package object

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var (
	// ErrNotFound indicates the key does not exist in the store.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey indicates a key that escapes the store root.
	ErrInvalidKey = errors.New("invalid object key")
)

// Object is an opened asset. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// AssetStore serves static assets by key.
type AssetStore interface {
	Open(ctx context.Context, key string) (Object, error)
}

// CleanKey normalizes a slash-separated key and rejects traversal.
func CleanKey(key string) (string, error) {
	raw := strings.TrimSpace(key)
	if raw == "" || strings.Contains(raw, "\\") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(raw, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	if strings.HasPrefix(raw, "/") {
		return "", ErrInvalidKey
	}
	clean := path.Clean(raw)
	if clean == "." {
		return "", ErrInvalidKey
	}
	return clean, nil
}
