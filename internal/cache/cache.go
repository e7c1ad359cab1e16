// Package cache memoizes remote provider responses. The deterministic core
// is never cached; only the remote boundary is, keyed by a digest of the
// normalized situation text so identical requests do not re-bill.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for response caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from normalized situation text.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "vantage:v1:" + hex.EncodeToString(hash[:])
}
