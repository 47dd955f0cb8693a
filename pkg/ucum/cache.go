package ucum

import "sync"

// evalCache memoizes Evaluate by the raw expression string. It is a pure
// optimization: every entry is reconstructible by re-parsing and
// re-evaluating, so the cache never needs to be correct across a process
// restart and may be cleared at any time without changing results.
//
// The eviction policy is deliberately simple (clear everything once the
// table grows past a threshold) rather than a true LRU, matching the
// "optimization, not a contract" posture of the evaluation cache.
type evalCache struct {
	mu      sync.RWMutex
	entries map[string]Canonical
	maxSize int
}

func newEvalCache(maxSize int) *evalCache {
	return &evalCache{entries: make(map[string]Canonical), maxSize: maxSize}
}

func (c *evalCache) get(expr string) (Canonical, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[expr]
	return v, ok
}

func (c *evalCache) put(expr string, v Canonical) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]Canonical)
	}
	c.entries[expr] = v
}

// CacheStats reports the number of entries currently cached, for diagnostics.
type CacheStats struct {
	Entries int
}

var globalEvalCache = newEvalCache(10_000)

// CacheStatsSnapshot returns a point-in-time snapshot of the global
// evaluation cache's occupancy.
func CacheStatsSnapshot() CacheStats {
	globalEvalCache.mu.RLock()
	defer globalEvalCache.mu.RUnlock()
	return CacheStats{Entries: len(globalEvalCache.entries)}
}

// ClearCache empties the global evaluation cache. Safe to call at any time;
// it only affects performance, never correctness.
func ClearCache() {
	globalEvalCache.mu.Lock()
	defer globalEvalCache.mu.Unlock()
	globalEvalCache.entries = make(map[string]Canonical)
}

// parseAndEvaluate is the cached composition of Parse and Evaluate used by
// every public Conversion API entry point.
func parseAndEvaluate(expr string) (Canonical, error) {
	if c, ok := globalEvalCache.get(expr); ok {
		return c, nil
	}
	tree, err := Parse(expr)
	if err != nil {
		return Canonical{}, err
	}
	c, err := Evaluate(tree)
	if err != nil {
		return Canonical{}, err
	}
	globalEvalCache.put(expr, c)
	return c, nil
}
