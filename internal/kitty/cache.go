package kitty

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheDirName  = "halftone/images"
	cacheMaxAge   = 30 * 24 * time.Hour
	pruneInterval = 24 * time.Hour
)

// Cache stores resized, PNG-encoded images on disk so revisiting a
// file at the same terminal size skips the resize and encode.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// NewCache creates a disk cache under baseDir, or under the user's
// cache directory when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		baseDir = userCache
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}

	// Prune old entries in background
	go c.pruneOldEntries()

	return c, nil
}

// cacheKey generates a unique key for a source image at specific pixel
// dimensions.
func cacheKey(imagePath string, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d", imagePath, width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Get retrieves cached PNG data for a source image at specific
// dimensions. Returns nil if not cached.
func (c *Cache) Get(imagePath string, width, height int) []byte {
	if c == nil {
		return nil
	}

	path := filepath.Join(c.dir, cacheKey(imagePath, width, height)+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file so frequently used entries stay fresh
	now := time.Now()
	_ = os.Chtimes(path, now, now)

	return data
}

// Put stores PNG data for a source image at specific dimensions.
// Empty data is not cached.
func (c *Cache) Put(imagePath string, width, height int, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}

	path := filepath.Join(c.dir, cacheKey(imagePath, width, height)+".png")
	return os.WriteFile(path, data, 0o600)
}

// Clear removes every cached entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// pruneOldEntries removes cache entries older than cacheMaxAge.
func (c *Cache) pruneOldEntries() {
	if c == nil {
		return
	}

	if time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
}
