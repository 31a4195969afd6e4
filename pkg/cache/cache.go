// Package cache stores computed layouts and rendered artifacts.
//
// Layout search is deterministic: the same sizes and engine options always
// produce the same rectangles. That makes layouts and the artifacts rendered
// from them safe to cache under a key derived from their inputs.
//
// Backends:
//
//   - [NullCache]: never stores anything (caching disabled).
//   - [FileCache]: JSON files under a directory, for the CLI.
//   - [RedisCache]: a Redis server, for the HTTP API running on several hosts.
//   - [MongoCache]: a MongoDB collection with a TTL index, for the same purpose.
//
// A [Keyer] builds the keys; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the engine inputs that change a layout.
type LayoutKeyOpts struct {
	CenterX     int     `json:"cx"`
	CenterY     int     `json:"cy"`
	MaxDistance float64 `json:"max_distance"`
	Increment   float64 `json:"increment"`
	MaxCycles   int     `json:"max_cycles"`
	MaxProbes   int     `json:"max_probes"`
	SkipFailed  bool    `json:"skip_failed,omitempty"`
}

// ArtifactKeyOpts are the render inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Style      string  `json:"style"`
	Scale      float64 `json:"scale,omitempty"`
	Margin     float64 `json:"margin"`
	Background string  `json:"background,omitempty"`
	EmbedFont  bool    `json:"embed_font,omitempty"`
	Title      string  `json:"title,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the sizes hashed as sourceHash.
	LayoutKey(sourceHash string, opts LayoutKeyOpts) string
	// ArtifactKey returns the key for an artifact rendered from a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(sourceHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", sourceHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
