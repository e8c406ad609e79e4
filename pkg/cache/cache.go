// Package cache stores pipeline stage outputs by content-addressed key.
//
// Backends implement [Cache]: [NullCache] (disabled), [FileCache] (CLI, one
// file per entry), [MemoryCache] (bounded LRU, server default) and
// [RedisCache] (shared between server instances). Keys are built by a
// [Keyer] so every backend sees the same namespace.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. Implementations are safe for
// concurrent use. A miss is (nil, false, nil), not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default time-to-live per stage.
const (
	PlanTTL     = 7 * 24 * time.Hour
	ColumnsTTL  = 7 * 24 * time.Hour
	ArtifactTTL = 24 * time.Hour
)

// ColumnKeyOpts are the column-grid parameters that affect the output.
type ColumnKeyOpts struct {
	Spacing     float64 `json:"spacing"`
	FloorHeight float64 `json:"floor_height"`
	ColumnSize  float64 `json:"column_size"`
}

// ArtifactKeyOpts are the rendering parameters that affect an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Floor    int     `json:"floor"`
	Theme    string  `json:"theme,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
	Columns  string  `json:"columns,omitempty"` // hash of the overlaid column grid
}

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// PlanKey identifies a synthesized document by program hash and variant.
	PlanKey(programHash, variant string) string
	// ColumnsKey identifies a column grid computed for a document.
	ColumnsKey(planHash string, opts ColumnKeyOpts) string
	// ArtifactKey identifies a rendered output of a document.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes stage inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) PlanKey(programHash, variant string) string {
	return hashKey("plan", programHash, variant)
}

func (DefaultKeyer) ColumnsKey(planHash string, opts ColumnKeyOpts) string {
	return hashKey("columns", planHash, opts)
}

func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
