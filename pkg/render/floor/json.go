package floor

import (
	"github.com/goccy/go-json"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	columns  []plan.Column
	warnings []plan.Warning
	score    *analysis.Score
	indent   bool
}

// WithJSONColumns includes the column grid.
func WithJSONColumns(cols []plan.Column) JSONOption {
	return func(r *jsonRenderer) { r.columns = cols }
}

// WithJSONWarnings includes validation warnings.
func WithJSONWarnings(w []plan.Warning) JSONOption {
	return func(r *jsonRenderer) { r.warnings = w }
}

// WithJSONScore includes the environmental score.
func WithJSONScore(s analysis.Score) JSONOption {
	return func(r *jsonRenderer) { r.score = &s }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	*plan.Document
	Columns  []plan.Column   `json:"columns,omitempty"`
	Warnings []plan.Warning  `json:"warnings,omitempty"`
	Score    *analysis.Score `json:"score,omitempty"`
}

// RenderJSON serializes doc with any attached analysis results.
func RenderJSON(doc *plan.Document, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Document: doc,
		Columns:  r.columns,
		Warnings: r.warnings,
		Score:    r.score,
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ReadJSON decodes a document written by RenderJSON, ignoring analysis fields.
func ReadJSON(data []byte) (*plan.Document, error) {
	var doc plan.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}
