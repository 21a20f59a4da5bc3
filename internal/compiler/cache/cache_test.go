package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal-lang/sigc/internal/compiler/parser"
)

func TestFileHasher(t *testing.T) {
	hasher := NewFileHasher()

	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hasher.HashString(""))
	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		hasher.HashContent([]byte("hello world")))
	assert.NotEqual(t, hasher.HashString("PROGRAM a;"), hasher.HashString("PROGRAM b;"))
}

func TestResultCacheSetAndLookup(t *testing.T) {
	rc := NewResultCache()
	hasher := NewFileHasher()

	source := "PROGRAM x; BEGIN END."
	result := parser.New().ParseSource(source)
	hash := hasher.HashString(source)

	rc.Set("file:///x.sig", result, hash)

	got, ok := rc.Lookup("file:///x.sig", hash)
	require.True(t, ok)
	assert.Same(t, result, got)

	_, ok = rc.Lookup("file:///x.sig", hasher.HashString("changed"))
	assert.False(t, ok, "stale hash must miss")

	_, ok = rc.Lookup("file:///other.sig", hash)
	assert.False(t, ok)

	entry, ok := rc.GetByHash(hash)
	require.True(t, ok)
	assert.Equal(t, "file:///x.sig", entry.Key)
}

func TestResultCacheInvalidate(t *testing.T) {
	rc := NewResultCache()
	rc.Set("a", &parser.Result{}, "1")
	rc.Set("b", &parser.Result{}, "2")
	assert.Equal(t, 2, rc.Size())

	rc.Invalidate("a")
	_, ok := rc.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, rc.Size())

	rc.InvalidateAll()
	assert.Equal(t, 0, rc.Size())
}

func TestResultCachePrune(t *testing.T) {
	rc := NewResultCache()
	rc.Set("old", &parser.Result{}, "1")
	rc.Set("fresh", &parser.Result{}, "2")

	old, _ := rc.Get("old")
	old.LastChecked = time.Now().Add(-time.Hour)
	rc.Touch("fresh")

	assert.Equal(t, 1, rc.Prune(time.Minute))
	_, ok := rc.Get("fresh")
	assert.True(t, ok)
}

func TestResultCacheConcurrentAccess(t *testing.T) {
	rc := NewResultCache()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			rc.Set(key, &parser.Result{}, key)
			rc.Get(key)
			rc.Size()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, rc.Size())
}
