package metro

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// ProgramCache keeps built render programs with LRU eviction.
//
// Building a program walks the whole map, so viewers that switch between
// maps keep recently used programs around. Memory accounting is an
// estimate based on element count and polyline points.
//
// The cache itself is safe for concurrent use. A Program handed out by the
// cache is not: callers that share a cached program across goroutines must
// serialize access to it.
//
// Example:
//
//	cache := metro.NewProgramCache(64 * 1024 * 1024) // 64MB
//
//	program, err := cache.Get("moscow", func() (*metro.Program, error) {
//	    m, err := parser.Parse("moscow.yaml")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return metro.NewProgram(m), nil
//	})
type ProgramCache struct {
	maxMemory  int64 // Maximum memory in bytes, 0 for unlimited
	usedMemory int64 // Current memory usage estimate
	programs   map[string]*cacheEntry
	lru        *list.List // most recent at front
	mu         sync.Mutex
}

// cacheEntry tracks a cached program and its metadata
type cacheEntry struct {
	name         string
	program      *Program
	memorySize   int64
	element      *list.Element
	lastAccessed time.Time
	accessCount  int
}

// NewProgramCache creates a cache with the given memory limit in bytes.
// Set to 0 for an unlimited cache.
func NewProgramCache(maxMemoryBytes int64) *ProgramCache {
	return &ProgramCache{
		maxMemory: maxMemoryBytes,
		programs:  make(map[string]*cacheEntry),
		lru:       list.New(),
	}
}

// Get returns the cached program for name or builds it with loader.
//
// The loader only runs on a miss. A program too large for the cache is
// returned without being cached.
func (c *ProgramCache) Get(name string, loader func() (*Program, error)) (*Program, error) {
	c.mu.Lock()
	if entry, ok := c.programs[name]; ok {
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()
		return entry.program, nil
	}
	c.mu.Unlock()

	program, err := loader()
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}

	if err := c.Add(name, program); err != nil {
		Logger().Debug("program not cached", "map", name, "err", err)
	}
	return program, nil
}

// Add stores a program, evicting least-recently-used programs to make room.
// Returns an error if the program alone exceeds the memory limit.
func (c *ProgramCache) Add(name string, program *Program) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.programs[name]; ok {
		memSize := estimateProgramMemory(program)
		c.usedMemory += memSize - entry.memorySize
		entry.program = program
		entry.memorySize = memSize
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		return nil
	}

	memSize := estimateProgramMemory(program)
	if c.maxMemory > 0 && memSize > c.maxMemory {
		return fmt.Errorf("program too large for cache (%d bytes > %d bytes max)",
			memSize, c.maxMemory)
	}

	if c.maxMemory > 0 {
		for c.usedMemory+memSize > c.maxMemory && c.lru.Len() > 0 {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{
		name:         name,
		program:      program,
		memorySize:   memSize,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.programs[name] = entry
	c.usedMemory += memSize

	return nil
}

// evictLRU removes the least recently used program.
// Must be called with c.mu locked.
func (c *ProgramCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.programs, entry.name)
	c.usedMemory -= entry.memorySize

	Logger().Debug("program evicted", "map", entry.name, "bytes", entry.memorySize)
}

// Remove drops a program from the cache, e.g. when its map is reloaded.
func (c *ProgramCache) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.programs[name]; ok {
		c.lru.Remove(entry.element)
		delete(c.programs, name)
		c.usedMemory -= entry.memorySize
	}
}

// Clear removes all programs.
func (c *ProgramCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.programs = make(map[string]*cacheEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// Stats returns cache statistics.
func (c *ProgramCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalAccess := 0
	for _, entry := range c.programs {
		totalAccess += entry.accessCount
	}

	return CacheStats{
		ProgramCount: len(c.programs),
		UsedMemory:   c.usedMemory,
		MaxMemory:    c.maxMemory,
		TotalAccess:  totalAccess,
	}
}

// CacheStats holds cache metrics.
type CacheStats struct {
	ProgramCount int   // Number of programs currently cached
	UsedMemory   int64 // Estimated memory usage in bytes
	MaxMemory    int64 // Maximum memory limit in bytes
	TotalAccess  int   // Total number of accesses across cached programs
}

// estimateProgramMemory approximates the footprint of a program:
//   - base overhead: 1KB
//   - per element: 256 bytes (element, paints, parallel array slots)
//   - per polyline point: 16 bytes
func estimateProgramMemory(p *Program) int64 {
	if p == nil {
		return 0
	}

	size := int64(1024)
	size += int64(len(p.elements)) * 256
	for _, e := range p.elements {
		size += int64(len(e.points)) * 16
	}
	return size
}
