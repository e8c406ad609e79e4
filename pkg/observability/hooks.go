// Package observability lets a host process watch plan generation, cache
// traffic and interactive edits without the libraries depending on a
// metrics backend.
//
// Hooks are registered once at startup and default to no-ops:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	observability.SetEditHooks(observability.NewLogHooks(logger))
//
// Libraries emit events through the registry accessors:
//
//	observability.Pipeline().OnSynthStart(ctx, variant)
//	// ... synthesize ...
//	observability.Pipeline().OnSynthComplete(ctx, variant, rooms, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the plan pipeline.
type PipelineHooks interface {
	// Synthesis events
	OnSynthStart(ctx context.Context, variant string)
	OnSynthComplete(ctx context.Context, variant string, rooms int, duration time.Duration, err error)

	// OnColumns records a finished column grid.
	OnColumns(ctx context.Context, columns int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache lookups. stage is one of
// "plan", "columns" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, stage string)
	OnCacheMiss(ctx context.Context, stage string)
	OnCacheSet(ctx context.Context, stage string, size int)
}

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from drag sessions.
type EditHooks interface {
	// OnDragBegin records a drag starting on a room handle.
	OnDragBegin(ctx context.Context, room, handle string)

	// OnDragEnd records a drag ending. committed is false when the drag
	// was cancelled or produced no change.
	OnDragEnd(ctx context.Context, room string, committed bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnSynthStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnSynthComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnColumns(context.Context, int, time.Duration)                      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnDragBegin(context.Context, string, string) {}
func (NoopEditHooks) OnDragEnd(context.Context, string, bool)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	editHooks     EditHooks     = NoopEditHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetEditHooks registers custom edit hooks.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	editHooks = NoopEditHooks{}
}
