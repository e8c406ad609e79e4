// Package pkg provides the core libraries of floorsmith, a residential floor
// plan generator.
//
// # Overview
//
// floorsmith turns a room program (plot size, floor count, room counts and a
// few feature toggles) into rectangular floor plans, overlays a structural
// column grid and lets a user drag and resize rooms interactively.
//
// # Architecture
//
// The typical data flow:
//
//	Room program (TOML / YAML / JSON)
//	         ↓
//	    [io] package (decode + normalize)
//	         ↓
//	    [synth] package (layout strategy per variant)
//	         ↓
//	    [plan] document ──→ [editor] (drag, resize, palette drops)
//	         ↓
//	    [structure] columns, [analysis] score
//	         ↓
//	    [render] SVG / JSON / DOT output
//
// [pipeline] wires these stages together with [cache] for the CLI and the
// HTTP server; [store] persists named projects. [observability] hooks report
// stage timings, cache traffic and drags to the host process.
//
// # Quick Start
//
//	p, _ := io.ImportProgram("house.toml")
//	doc, _ := synth.Generate(p, synth.VariantBase)
//	cols := structure.GenerateColumns(structure.Options{Rooms: doc.Rooms})
//	svg := floor.RenderSVG(doc, floor.WithColumns(cols))
//
// [io]: github.com/matzehuels/floorsmith/pkg/io
// [synth]: github.com/matzehuels/floorsmith/pkg/synth
// [plan]: github.com/matzehuels/floorsmith/pkg/plan
// [editor]: github.com/matzehuels/floorsmith/pkg/editor
// [structure]: github.com/matzehuels/floorsmith/pkg/structure
// [analysis]: github.com/matzehuels/floorsmith/pkg/analysis
// [render]: github.com/matzehuels/floorsmith/pkg/render
// [pipeline]: github.com/matzehuels/floorsmith/pkg/pipeline
// [cache]: github.com/matzehuels/floorsmith/pkg/cache
// [store]: github.com/matzehuels/floorsmith/pkg/store
// [observability]: github.com/matzehuels/floorsmith/pkg/observability
package pkg
