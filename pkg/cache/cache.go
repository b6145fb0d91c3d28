// Package cache stores rendered timeline artifacts.
//
// Rendering the reference chart produces thousands of elements and, for PNG
// and PDF, shells out to an external converter. Artifacts are therefore
// cached by a key derived from the chart content and the render options, so
// an unchanged chart is served without being redrawn.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys are built by a [Keyer]; wrap one in [NewScopedKeyer] to give separate
// deployments their own namespace inside a shared backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default time-to-live values.
const (
	// TTLArtifact applies to rendered SVG, PNG, PDF and JSON output. Output is
	// fully determined by its key, so it only expires to bound disk usage.
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a chart.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists every render option that changes the output bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Rasterizer string  `json:"rasterizer,omitempty"`
	Precision  int     `json:"precision"`
	Title      string  `json:"title,omitempty"`
}

// DefaultKeyer produces keys of the form "artifact:<format>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return artifactKey(chartHash, opts)
}
