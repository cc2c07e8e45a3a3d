package rounded

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultSpriteCacheCapacity is the capacity used when NewSpriteCache is
// given a non-positive value.
const DefaultSpriteCacheCapacity = 256

// SpriteCache is a thread-safe LRU cache of resolved sprites, keyed by the
// persisted sprite name. Loading many states that share sprites resolves
// each name once.
type SpriteCache struct {
	mu       sync.Mutex
	load     SpriteResolver
	capacity int
	entries  map[string]*list.Element
	lru      *list.List // front is most recently used; values are spriteEntry

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type spriteEntry struct {
	name   string
	sprite *Sprite
}

// SpriteCacheStats holds cache statistics.
type SpriteCacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewSpriteCache returns a cache that resolves misses through load.
// Names load cannot resolve (nil result) are not cached.
func NewSpriteCache(capacity int, load SpriteResolver) *SpriteCache {
	if capacity <= 0 {
		capacity = DefaultSpriteCacheCapacity
	}
	return &SpriteCache{
		load:     load,
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Resolve returns the sprite for name, loading it on a miss. The load
// function runs with the cache lock held.
func (c *SpriteCache) Resolve(name string) *Sprite {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok {
		c.lru.MoveToFront(e)
		c.hits.Add(1)
		return e.Value.(spriteEntry).sprite
	}
	c.misses.Add(1)
	if c.load == nil {
		return nil
	}
	s := c.load(name)
	if s == nil {
		return nil
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(spriteEntry).name)
		c.evictions.Add(1)
	}
	c.entries[name] = c.lru.PushFront(spriteEntry{name: name, sprite: s})
	return s
}

// Resolver returns c.Resolve as a SpriteResolver for State.Params and
// Image.ApplyState.
func (c *SpriteCache) Resolver() SpriteResolver { return c.Resolve }

// Forget drops name so the next Resolve reloads it.
func (c *SpriteCache) Forget(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	if !ok {
		return false
	}
	c.lru.Remove(e)
	delete(c.entries, name)
	return true
}

// Len returns the number of cached sprites.
func (c *SpriteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns current cache statistics.
func (c *SpriteCache) Stats() SpriteCacheStats {
	return SpriteCacheStats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
