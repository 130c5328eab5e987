package lookups

import (
	"context"
	"sync"
)

const memoryCapacity = 500

// MemoryRepo keeps the most recent lookups in a fixed-size ring and is safe
// for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	ring  []Lookup
	next  int
	count int
}

// NewMemoryRepo constructs a MemoryRepo holding up to 500 lookups.
func NewMemoryRepo() *MemoryRepo {
	return newMemoryRepo(memoryCapacity)
}

func newMemoryRepo(capacity int) *MemoryRepo {
	return &MemoryRepo{ring: make([]Lookup, capacity)}
}

// Create stores the lookup, evicting the oldest when full.
func (r *MemoryRepo) Create(ctx context.Context, lookup Lookup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring[r.next] = cloneLookup(lookup)
	r.next = (r.next + 1) % len(r.ring)
	if r.count < len(r.ring) {
		r.count++
	}
	return nil
}

// ListRecent returns lookups newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Lookup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = clampLimit(limit)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > r.count {
		limit = r.count
	}
	out := make([]Lookup, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.ring)) % len(r.ring)
		out = append(out, cloneLookup(r.ring[idx]))
	}
	return out, nil
}

func cloneLookup(l Lookup) Lookup {
	l.Items = cloneList(l.Items)
	l.ImageURLs = cloneList(l.ImageURLs)
	return l
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
