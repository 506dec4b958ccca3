// Package cache stores score breakdowns keyed by their inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/jonathan/fit-scorer/internal/types"
)

// KeyPrefix namespaces every key written by the scorer
const KeyPrefix = "fit:score:"

// DefaultTTL is used when a caller passes a non-positive TTL
const DefaultTTL = 10 * time.Minute

// Cache is a JSON value store. Implementations treat an unavailable backend as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Noop never stores anything
type Noop struct{}

// GetJSON always misses
func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

// SetJSON discards the value
func (Noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }

// keyMaterial is hashed to build a cache key; field order is fixed by the struct
type keyMaterial struct {
	CV      string             `json:"cv"`
	JD      string             `json:"jd"`
	Options types.ScoreOptions `json:"options"`
}

// Key derives the cache key of a scoring request. Raw text never appears in the key.
// It returns "" when the request cannot be encoded; callers must not cache such requests.
func Key(cv, jd string, opts types.ScoreOptions) string {
	// map keys are sorted by encoding/json, so equal options encode identically
	b, err := json.Marshal(keyMaterial{CV: cv, JD: jd, Options: opts})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return KeyPrefix + hex.EncodeToString(sum[:])
}
