package caching

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/gofrs/flock"
)

const lockFileName = ".notia-cache.lock"

// Cache provides a simple file-based cache with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
	lock *flock.Flock
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
		lock: flock.New(filepath.Join(path, lockFileName)),
	}, nil
}

// Key hashes the given parts into a cache key.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(key string) ([]byte, bool) {
	filePath := filepath.Join(c.path, key)

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	return data, true
}

// Set adds an item to the cache. Writes hold an exclusive file lock and go
// through a rename, so readers never see a partial entry.
func (c *Cache) Set(key string, data []byte) error {
	if err := c.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock cache: %w", err)
	}
	defer func() { _ = c.lock.Unlock() }()

	filePath := filepath.Join(c.path, key)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

func keywordsKey(batchHash string, topN int) string {
	return Key("keywords", batchHash, strconv.Itoa(topN))
}

// GetKeywords returns cached keywords for a batch hash and limit.
func (c *Cache) GetKeywords(batchHash string, topN int) ([]models.Keyword, bool) {
	data, ok := c.Get(keywordsKey(batchHash, topN))
	if !ok {
		return nil, false
	}
	var keywords []models.Keyword
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, false
	}
	return keywords, true
}

// SetKeywords caches keywords for a batch hash and limit.
func (c *Cache) SetKeywords(batchHash string, topN int, keywords []models.Keyword) error {
	data, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}
	return c.Set(keywordsKey(batchHash, topN), data)
}

// Size returns the total bytes held by cache entries.
func (c *Cache) Size() (int64, error) {
	entries, err := os.ReadDir(c.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}
	var total int64
	for _, e := range entries {
		if e.IsDir() || e.Name() == lockFileName {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
