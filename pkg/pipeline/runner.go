package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/matzehuels/floorsmith/pkg/cache"
	"github.com/matzehuels/floorsmith/pkg/observability"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete synthesize → columns → analyze → render pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Synthesize
	synthStart := time.Now()
	doc, planHit, err := r.SynthesizeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	result.Document = doc
	result.PlanHash = documentHash(doc)
	result.Stats.SynthTime = time.Since(synthStart)
	result.Stats.RoomCount = len(doc.Rooms)
	result.CacheInfo.PlanHit = planHit

	r.Logger.Info("synthesized plan",
		"variant", opts.Variant,
		"rooms", len(doc.Rooms),
		"floors", doc.FloorCount(),
		"duration", result.Stats.SynthTime)

	// Stage 2: Columns
	if opts.Columns {
		columnsStart := time.Now()
		cols, hit, err := r.ColumnsWithCacheInfo(ctx, doc, opts)
		if err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
		result.Columns = cols
		result.Stats.ColumnsTime = time.Since(columnsStart)
		result.Stats.ColumnCount = len(cols)
		result.CacheInfo.ColumnsHit = hit

		r.Logger.Info("generated columns",
			"columns", len(cols),
			"spacing", opts.Spacing,
			"duration", result.Stats.ColumnsTime)
	}

	// Stage 3: Analyze
	result.Warnings, result.Score = Analyze(opts.Program, doc)
	for _, w := range result.Warnings {
		r.Logger.Warn("plan warning", "code", w.Code, "floor", w.Floor, "msg", w.Message)
	}
	r.Logger.Debug("scored plan", "score", result.Score.Normalized, "grade", result.Score.Grade)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, result.Columns, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SynthesizeWithCacheInfo lays out the program with caching and returns cache hit info.
func (r *Runner) SynthesizeWithCacheInfo(ctx context.Context, opts Options) (*plan.Document, bool, error) {
	if err := opts.ValidateForSynth(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	programHash, err := cache.HashValue(opts.Program)
	if err != nil {
		return nil, false, fmt.Errorf("hash program: %w", err)
	}
	cacheKey := r.Keyer.PlanKey(programHash, opts.Variant)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var doc plan.Document
			if err := json.Unmarshal(data, &doc); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return &doc, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	hooks := observability.Pipeline()
	hooks.OnSynthStart(ctx, opts.Variant)
	start := time.Now()
	doc, err := GenerateDocument(opts)
	if err != nil {
		hooks.OnSynthComplete(ctx, opts.Variant, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnSynthComplete(ctx, opts.Variant, len(doc.Rooms), time.Since(start), nil)

	if data, err := json.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.PlanTTL); err != nil {
			r.Logger.Debug("cache write failed", "stage", "plan", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "plan", len(data))
		}
	}

	return doc, false, nil // Cache miss
}

// Synthesize is a convenience wrapper that calls SynthesizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Synthesize(ctx context.Context, opts Options) (*plan.Document, error) {
	doc, _, err := r.SynthesizeWithCacheInfo(ctx, opts)
	return doc, err
}

// ColumnsWithCacheInfo generates the column grid with caching and returns cache hit info.
func (r *Runner) ColumnsWithCacheInfo(ctx context.Context, doc *plan.Document, opts Options) ([]plan.Column, bool, error) {
	opts.SetColumnDefaults()
	cacheKey := r.Keyer.ColumnsKey(documentHash(doc), opts.ColumnKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cols []plan.Column
		if err := json.Unmarshal(data, &cols); err == nil {
			observability.Cache().OnCacheHit(ctx, "columns")
			return cols, true, nil // Cache hit
		}
	}
	observability.Cache().OnCacheMiss(ctx, "columns")

	start := time.Now()
	cols := GenerateColumns(doc, opts)
	observability.Pipeline().OnColumns(ctx, len(cols), time.Since(start))

	if data, err := json.Marshal(cols); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ColumnsTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "columns", len(data))
		}
	}

	return cols, false, nil // Cache miss
}

// Columns is a convenience wrapper that calls ColumnsWithCacheInfo and discards the cache hit info.
func (r *Runner) Columns(ctx context.Context, doc *plan.Document, opts Options) ([]plan.Column, error) {
	cols, _, err := r.ColumnsWithCacheInfo(ctx, doc, opts)
	return cols, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Artifacts are keyed by document content, so an edited document never
// reuses the drawing of its unedited original.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *plan.Document, cols []plan.Column, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	planHash := documentHash(doc)
	var colsHash string
	if len(cols) > 0 {
		colsHash, _ = cache.HashValue(cols)
	}

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format, colsHash))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil || !hit {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	warnings, score := Analyze(opts.Program, doc)
	rendered, err := Render(ctx, doc, cols, warnings, score, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format, colsHash))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *plan.Document, cols []plan.Column, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, cols, opts)
	return artifacts, err
}

// Variants synthesizes p with every registered layout strategy, in
// synth.Variants order.
func (r *Runner) Variants(ctx context.Context, p plan.Program) ([]*plan.Document, error) {
	docs := make([]*plan.Document, 0, len(synth.Variants))
	for _, v := range synth.Variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := r.Synthesize(ctx, Options{Program: p, Variant: string(v)})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		docs = append(docs, doc)
	}
	r.Logger.Info("synthesized variants", "count", len(docs))
	return docs, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func documentHash(doc *plan.Document) string {
	h, err := cache.HashValue(doc)
	if err != nil {
		return ""
	}
	return h
}
