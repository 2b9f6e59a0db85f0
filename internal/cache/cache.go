// Package cache stores rendered reports keyed by input digest so batch and
// watch runs skip re-analyzing unchanged note files.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from an extractor kind and the raw input text
func Key(kind string, input []byte) string {
	hash := sha256.New()
	hash.Write([]byte(kind))
	hash.Write([]byte{0})
	hash.Write(input)
	return "fieldlens:v1:" + hex.EncodeToString(hash.Sum(nil))
}
