package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache"), time.Hour)
	require.NoError(t, err)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", []byte("value")))
	data, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "value", string(data))

	require.NoError(t, cache.Set("k", []byte("replaced")))
	data, ok = cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "replaced", string(data))
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewCache(dir, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cache.Set("old", []byte("stale")))
	past := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old"), past, past))

	_, ok := cache.Get("old")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Len(t, Key("x"), 64)
}

func TestKeywords(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	keywords := []models.Keyword{{Token: "chat", Count: 2}, {Token: "souris", Count: 1}}
	require.NoError(t, cache.SetKeywords("batch", 5, keywords))

	got, ok := cache.GetKeywords("batch", 5)
	require.True(t, ok)
	assert.Equal(t, keywords, got)

	_, ok = cache.GetKeywords("batch", 3)
	assert.False(t, ok, "different top_n must miss")

	require.NoError(t, cache.Set(keywordsKey("corrupt", 5), []byte("not json")))
	_, ok = cache.GetKeywords("corrupt", 5)
	assert.False(t, ok)
}

func TestSize(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	size, err := cache.Size()
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, cache.Set("a", []byte("12345")))
	require.NoError(t, cache.Set("b", []byte("123")))

	size, err = cache.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
}
