// Package pipeline provides the program-to-artifacts pipeline for floorsmith.
//
// This package implements the complete synthesize → columns → analyze →
// render pipeline used by the CLI and the HTTP server, so both entry points
// share defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Synthesize: Lay out the room program with the selected variant
//  2. Columns: Overlay the structural column grid (optional)
//  3. Analyze: Validate the document and compute the environmental score
//  4. Render: Generate output in the requested formats (SVG, JSON, DOT, adjacency SVG)
//
// Synthesis, columns and every rendered artifact are cached by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Program: program,
//	    Variant: "horizontal",
//	    Columns: true,
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	doc, err := runner.Synthesize(ctx, opts)
//	cols, err := runner.Columns(ctx, doc, opts)
//	artifacts, err := runner.Render(ctx, doc, cols, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/cache"
	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/render/floor"
	"github.com/matzehuels/floorsmith/pkg/structure"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultVariant is the layout variant used when none is given.
const DefaultVariant = synth.VariantBase

// DefaultTheme is the SVG colour theme used when none is given.
const DefaultTheme = "dark"

// Format constants for output formats.
const (
	FormatSVG       = "svg"       // floor drawing
	FormatJSON      = "json"      // document with columns, warnings and score
	FormatDOT       = "dot"       // room adjacency graph source
	FormatAdjacency = "adjacency" // room adjacency graph rendered by Graphviz
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:       true,
	FormatJSON:      true,
	FormatDOT:       true,
	FormatAdjacency: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Synthesis options
	Program plan.Program `json:"program"`
	Variant string       `json:"variant,omitempty"`
	Refresh bool         `json:"refresh,omitempty"`

	// Column options
	Columns     bool    `json:"columns,omitempty"`
	Spacing     float64 `json:"spacing,omitempty"`
	FloorHeight float64 `json:"floorHeight,omitempty"`
	ColumnSize  float64 `json:"columnSize,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Floor    int      `json:"floor,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // adjacency labels carry room sizes

	// Runtime options (not serialized)
	ProgramFile string      `json:"-"` // read Program from this file when set
	Logger      *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the synthesized floor plan.
	Document *plan.Document

	// PlanHash is the content hash of the document.
	PlanHash string

	// Columns is the structural grid; empty unless Options.Columns is set.
	Columns []plan.Column

	// Warnings are the validation findings for Document.
	Warnings []plan.Warning

	// Score is the environmental analysis of Document.
	Score analysis.Score

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount   int
	ColumnCount int
	SynthTime   time.Duration
	ColumnsTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit    bool // Whether the document came from cache
	ColumnsHit bool // Whether the column grid came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot, adjacency)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSynth(); err != nil {
		return err
	}
	o.SetColumnDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSynth loads the program file if one is set, normalizes the
// program and resolves the variant.
func (o *Options) ValidateForSynth() error {
	if o.ProgramFile != "" {
		p, err := LoadProgram(o.ProgramFile)
		if err != nil {
			return err
		}
		o.Program = p
		o.ProgramFile = ""
	}
	p, err := o.Program.Normalize()
	if err != nil {
		return err
	}
	o.Program = p

	if o.Variant == "" {
		o.Variant = string(DefaultVariant)
	}
	v, err := synth.ParseVariant(o.Variant)
	if err != nil {
		return err
	}
	o.Variant = string(v)

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetColumnDefaults sets default values for the column grid.
func (o *Options) SetColumnDefaults() {
	if o.Spacing <= 0 {
		o.Spacing = structure.DefaultSpacing
	}
	if o.FloorHeight <= 0 {
		o.FloorHeight = structure.DefaultFloorHeight
	}
	if o.ColumnSize <= 0 {
		o.ColumnSize = structure.DefaultColumnSize
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Scale <= 0 {
		o.Scale = floor.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Floor < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "floor must not be negative, got %d", o.Floor)
	}
	_, err := floor.ParseTheme(o.Theme)
	return err
}

// ColumnOptions returns the column generator configuration for doc.
func (o *Options) ColumnOptions(doc *plan.Document) structure.Options {
	return structure.Options{
		Rooms:       doc.Rooms,
		Floors:      doc.FloorCount(),
		FloorHeight: o.FloorHeight,
		Spacing:     o.Spacing,
		ColumnSize:  o.ColumnSize,
	}
}

// ColumnKeyOpts returns cache key options for the column grid.
func (o *Options) ColumnKeyOpts() cache.ColumnKeyOpts {
	return cache.ColumnKeyOpts{
		Spacing:     o.Spacing,
		FloorHeight: o.FloorHeight,
		ColumnSize:  o.ColumnSize,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// columnsHash identifies the overlaid grid; it is empty when columns are off.
func (o *Options) ArtifactKeyOpts(format, columnsHash string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Floor: o.Floor}
	switch format {
	case FormatSVG:
		k.Theme = o.Theme
		k.Scale = o.Scale
		k.Columns = columnsHash
	case FormatJSON:
		k.Columns = columnsHash
	case FormatDOT, FormatAdjacency:
		k.Detailed = o.Detailed
	}
	return k
}
