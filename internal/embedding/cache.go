package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// MemoryCache memoizes embeddings within the process. Scoring a CV against a
// JD embeds the full texts plus the filtered experience strings, so repeated
// or overlapping requests hit the cache instead of the model. Vectors stored
// here are treated as immutable.
type MemoryCache struct {
	inner Provider

	mu      sync.RWMutex
	vectors map[string][]float32
}

func NewMemoryCache(inner Provider) *MemoryCache {
	return &MemoryCache{
		inner:   inner,
		vectors: make(map[string][]float32),
	}
}

// Embed implements Provider.
func (c *MemoryCache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := CacheKey(c.inner.ModelVersion(), text)

	c.mu.RLock()
	vec, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = vec
	c.mu.Unlock()

	return vec, nil
}

// ModelVersion implements Provider.
func (c *MemoryCache) ModelVersion() string {
	return c.inner.ModelVersion()
}

// Len reports the number of cached vectors.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

// CacheKey identifies a (model version, text) pair. Vectors from different
// model versions are never interchangeable, so the version is part of the key.
func CacheKey(modelVersion, text string) string {
	sum := sha256.Sum256([]byte(modelVersion + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
