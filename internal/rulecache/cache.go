// Package rulecache memoizes ruleset construction: building a language's
// grammar (composing every rule's regexes) is deterministic and pure in
// its language argument (spec.md §6: "deterministic, cacheable"), so it
// only needs doing once per language no matter how many times a caller
// calls chronolex.BuildRuleset. Adapted from the teacher's generic
// random-replacement memoizer (internal/cache in the date-parsing sibling
// example this module draws its caching idiom from), specialised to the
// small, fixed key space of value.Language.
package rulecache

import (
	"sync"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

type entry struct {
	rs  *rule.Ruleset
	err error
}

// Cache memoizes *rule.Ruleset construction per language. Its zero value
// is ready to use and safe for concurrent use; unlike the generic
// teacher cache this specializes to, there is no eviction policy because
// the key space is the fixed, small set of supported languages.
type Cache struct {
	mu sync.RWMutex
	m  map[value.Language]entry
}

// Get returns the cached ruleset for l, building it with build and
// caching the result (including a build error, so a permanently invalid
// language never re-runs its builder) the first time l is requested.
func (c *Cache) Get(l value.Language, build func(value.Language) (*rule.Ruleset, error)) (*rule.Ruleset, error) {
	c.mu.RLock()
	if e, ok := c.m[l]; ok {
		c.mu.RUnlock()
		return e.rs, e.err
	}
	c.mu.RUnlock()

	rs, err := build(l)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[l]; ok {
		return e.rs, e.err
	}
	if c.m == nil {
		c.m = make(map[value.Language]entry)
	}
	c.m[l] = entry{rs: rs, err: err}
	return rs, err
}

// Flush removes every cached entry, forcing the next Get per language to
// rebuild.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
