package lookups

import "context"

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Repo persists lookup history.
type Repo interface {
	Create(ctx context.Context, lookup Lookup) error
	// ListRecent returns at most limit lookups, newest first.
	ListRecent(ctx context.Context, limit int) ([]Lookup, error)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
