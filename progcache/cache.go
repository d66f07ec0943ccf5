package progcache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/progdesc"
	"github.com/gogpu/progdesc/program"
)

const (
	// shardCount is the number of shards. Power of 2 for fast modulo
	// via bitwise AND.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default maximum programs per shard.
	DefaultCapacity = 256
)

// Cache is a thread-safe, sharded LRU cache of compiled shader
// programs keyed by descriptor bytes.
type Cache struct {
	shards   [shardCount]*shard
	capacity int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard holds one slice of the key space behind its own lock.
type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
	lru     lruList
}

type entry struct {
	prog *program.Program
	node *lruNode
}

// New creates a program cache holding up to capacity programs per shard
// (total capacity is capacity * 16). If capacity <= 0, DefaultCapacity
// is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]*entry)}
	}
	return c
}

// getShard hashes the descriptor bytes with FNV-1a to pick a shard.
func (c *Cache) getShard(key string) *shard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	return c.shards[h.Sum64()&shardMask]
}

// Get returns the cached program for a descriptor, marking it most
// recently used.
func (c *Cache) Get(desc progdesc.Descriptor) (*program.Program, bool) {
	key := string(desc.Bytes())
	s := c.getShard(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		// Evicted between the two locks.
		s.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	s.lru.MoveToFront(e.node)
	prog := e.prog
	s.mu.Unlock()

	c.hits.Add(1)
	return prog, true
}

// Put stores a compiled program under its descriptor, evicting the
// least recently used entries if the shard is full.
func (c *Cache) Put(desc progdesc.Descriptor, prog *program.Program) {
	key := string(desc.Bytes())
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.insertLocked(s, key, prog)
}

// GetOrCompile returns the cached program for a descriptor, calling
// compile and storing the result on a miss. compile runs with the shard
// lock held, so concurrent draws of the same configuration compile once.
func (c *Cache) GetOrCompile(desc progdesc.Descriptor, compile func() (*program.Program, error)) (*program.Program, error) {
	key := string(desc.Bytes())
	s := c.getShard(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		if e, ok := s.entries[key]; ok {
			s.lru.MoveToFront(e.node)
			prog := e.prog
			s.mu.Unlock()
			c.hits.Add(1)
			return prog, nil
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.prog, nil
	}

	c.misses.Add(1)
	prog, err := compile()
	if err != nil {
		return nil, err
	}
	c.insertLocked(s, key, prog)
	return prog, nil
}

// Program builds the descriptor for a draw and returns its program,
// compiling on a cache miss. A descriptor build failure means the draw
// cannot be cached under this scheme; the error is returned as-is and
// retrying cannot help.
func (c *Cache) Program(state *progdesc.PipelineState, flags progdesc.Flags, kind progdesc.DrawKind, caps *progdesc.Caps) (*program.Program, error) {
	desc, err := progdesc.Build(state, flags, kind, caps)
	if err != nil {
		return nil, err
	}
	return c.GetOrCompile(desc, func() (*program.Program, error) {
		return program.New(desc, state, flags, kind)
	})
}

// insertLocked adds an entry, evicting from the tail while over
// capacity. Caller holds the shard lock.
func (c *Cache) insertLocked(s *shard, key string, prog *program.Program) {
	if e, ok := s.entries[key]; ok {
		e.prog = prog
		s.lru.MoveToFront(e.node)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	node := s.lru.PushFront(key)
	s.entries[key] = &entry{prog: prog, node: node}
}

// Delete removes the program cached under a descriptor. Returns true if
// an entry was removed.
func (c *Cache) Delete(desc progdesc.Descriptor) bool {
	key := string(desc.Bytes())
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes all cached programs.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*entry)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of cached programs across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// Stats returns current counters. Mostly lock-free; Len takes each
// shard's read lock briefly.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats zeroes all counters.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
