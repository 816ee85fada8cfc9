// File: cache.go
// Role: the attribute-match cache — memoizes NodeAttrMatch(u, x) for the
//       lifetime of a single search (spec §3, §9).
// Concurrency: guarded by a single mutex; safe to share across the parallel
//              engine's workers (spec §5: "a concurrent mapping suffices").
// AI-HINT (file):
//   - Scoped to one search: callers construct a fresh Cache per FindMotifs
//     call and discard it at the end. Never share a Cache across searches.

package match

import (
	"sync"

	"github.com/aplbrain/grandiso-go/core"
)

type cacheKey struct {
	motifVertex string
	hostVertex  string
}

// Cache memoizes the result of a NodeAttrMatch for (motifVertex, hostVertex)
// pairs encountered during one search.
type Cache struct {
	mu    sync.Mutex
	match NodeAttrMatch
	memo  map[cacheKey]bool
}

// NewCache returns a Cache wrapping match, ready to memoize across one search.
func NewCache(match NodeAttrMatch) *Cache {
	return &Cache{
		match: match,
		memo:  make(map[cacheKey]bool),
	}
}

// Match returns match(motifAttrs, hostAttrs) for (u, x), computing and
// memoizing it on first use. Safe for concurrent use by multiple workers.
func (c *Cache) Match(u, x string, motifAttrs, hostAttrs core.Attrs) bool {
	key := cacheKey{motifVertex: u, hostVertex: x}

	c.mu.Lock()
	if v, ok := c.memo[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := c.match(motifAttrs, hostAttrs)

	c.mu.Lock()
	c.memo[key] = v
	c.mu.Unlock()

	return v
}

// Len reports how many (motifVertex, hostVertex) pairs have been memoized.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.memo)
}
