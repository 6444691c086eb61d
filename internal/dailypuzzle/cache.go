package dailypuzzle

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// cachedPuzzleEntry wraps a puzzle with version metadata for cache invalidation
type cachedPuzzleEntry struct {
	Version  string
	Puzzle   *domain.DailyPuzzle
	CachedAt time.Time
}

// puzzleCache keeps recently served days in memory. Puzzles never change once stored,
// so the TTL only bounds memory held by days nobody asks for anymore.
// A nil *puzzleCache is valid and caches nothing.
type puzzleCache struct {
	lru *expirable.LRU[string, *cachedPuzzleEntry]
}

// newPuzzleCache returns nil when size is not positive
func newPuzzleCache(size int, ttl time.Duration) *puzzleCache {
	if size <= 0 {
		return nil
	}
	return &puzzleCache{
		lru: expirable.NewLRU[string, *cachedPuzzleEntry](size, nil, ttl),
	}
}

func cacheKey(day time.Time) string {
	return day.Format(domain.DateLayout)
}

// Get returns the cached puzzle for day; entries from another schema version are dropped
func (c *puzzleCache) Get(day time.Time) (*domain.DailyPuzzle, bool) {
	if c == nil {
		return nil, false
	}
	key := cacheKey(day)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}

	return entry.Puzzle, true
}

// Set stores a puzzle under its day
func (c *puzzleCache) Set(p *domain.DailyPuzzle) {
	if c == nil {
		return
	}
	c.lru.Add(cacheKey(p.Date), &cachedPuzzleEntry{
		Version:  CacheSchemaVersion,
		Puzzle:   p,
		CachedAt: time.Now(),
	})
}
