package pipeline

import (
	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/structure"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

// =============================================================================
// Synthesis
// =============================================================================

// GenerateDocument lays out opts.Program with opts.Variant. The options must
// have passed ValidateForSynth.
func GenerateDocument(opts Options) (*plan.Document, error) {
	return synth.Generate(opts.Program, synth.Variant(opts.Variant))
}

// =============================================================================
// Columns
// =============================================================================

// GenerateColumns overlays the structural grid onto doc.
func GenerateColumns(doc *plan.Document, opts Options) []plan.Column {
	opts.SetColumnDefaults()
	cols := structure.GenerateColumns(opts.ColumnOptions(doc))
	if cols == nil {
		cols = []plan.Column{}
	}
	return cols
}

// =============================================================================
// Analysis
// =============================================================================

// Analyze validates doc and scores it. Program-level warnings come first,
// followed by document findings. A zero program, as when rendering a saved
// document, contributes no program warnings.
func Analyze(p plan.Program, doc *plan.Document) ([]plan.Warning, analysis.Score) {
	var warnings []plan.Warning
	if p != (plan.Program{}) {
		warnings = p.Warnings()
	}
	warnings = append(warnings, plan.Validate(doc)...)
	return warnings, analysis.ScoreDocument(doc)
}
