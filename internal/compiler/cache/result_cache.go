package cache

import (
	"sync"
	"time"

	"github.com/signal-lang/sigc/internal/compiler/parser"
)

// CachedResult is one cached analysis with metadata
type CachedResult struct {
	Result      *parser.Result
	Hash        string
	Key         string
	CachedAt    time.Time
	LastChecked time.Time
}

// ResultCache provides in-memory caching of analysis results
type ResultCache struct {
	entries map[string]*CachedResult
	mu      sync.RWMutex
}

// NewResultCache creates a new result cache
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]*CachedResult),
	}
}

// Get retrieves a cached result by key (a path or document URI).
// LastChecked is only updated by Set and Touch, never under the read lock.
func (rc *ResultCache) Get(key string) (*CachedResult, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	entry, exists := rc.entries[key]
	return entry, exists
}

// Lookup returns the cached result for key if it was computed from content
// with the given hash
func (rc *ResultCache) Lookup(key, hash string) (*parser.Result, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	entry, exists := rc.entries[key]
	if !exists || entry.Hash != hash {
		return nil, false
	}
	return entry.Result, true
}

// GetByHash retrieves any cached result computed from content with hash
func (rc *ResultCache) GetByHash(hash string) (*CachedResult, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	for _, entry := range rc.entries {
		if entry.Hash == hash {
			return entry, true
		}
	}
	return nil, false
}

// Set stores a result in the cache
func (rc *ResultCache) Set(key string, result *parser.Result, hash string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	now := time.Now()
	rc.entries[key] = &CachedResult{
		Result:      result,
		Hash:        hash,
		Key:         key,
		CachedAt:    now,
		LastChecked: now,
	}
}

// Touch marks an entry as recently used
func (rc *ResultCache) Touch(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if entry, ok := rc.entries[key]; ok {
		entry.LastChecked = time.Now()
	}
}

// Invalidate removes an entry from the cache
func (rc *ResultCache) Invalidate(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	delete(rc.entries, key)
}

// InvalidateAll clears the entire cache
func (rc *ResultCache) InvalidateAll() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.entries = make(map[string]*CachedResult)
}

// Size returns the number of cached entries
func (rc *ResultCache) Size() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return len(rc.entries)
}

// Prune removes entries that haven't been checked in the given duration
func (rc *ResultCache) Prune(maxAge time.Duration) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	now := time.Now()
	pruned := 0

	for key, entry := range rc.entries {
		if now.Sub(entry.LastChecked) > maxAge {
			delete(rc.entries, key)
			pruned++
		}
	}

	return pruned
}
