package results

import (
	"sync"

	"github.com/okhalaf/mreval/internal/evaluate"
)

// Cache is the in-memory index of completed cases, keyed by point ID. It
// is safe for concurrent use; insert-if-absent is the only write path, so
// the first completion of a point wins and repeats are idempotent.
type Cache struct {
	mu sync.RWMutex
	m  map[string]evaluate.CaseResult
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]evaluate.CaseResult)}
}

// WarmCache loads every case record already in the store, seeding the
// cache a restarted sweep consults before dispatching.
func WarmCache(s *Store) (*Cache, error) {
	cases, err := s.LoadCases()
	if err != nil {
		return nil, err
	}
	c := NewCache()
	for _, res := range cases {
		c.m[res.ID] = res
	}
	return c, nil
}

// Get returns the cached result for id.
func (c *Cache) Get(id string) (evaluate.CaseResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.m[id]
	return res, ok
}

// PutIfAbsent stores res under its ID unless a result is already present.
// It reports whether the store happened.
func (c *Cache) PutIfAbsent(res evaluate.CaseResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[res.ID]; ok {
		return false
	}
	c.m[res.ID] = res
	return true
}

// Len is the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
