package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/render/adjacency"
	"github.com/matzehuels/floorsmith/pkg/render/floor"
)

// Render generates output artifacts in the requested formats. cols may be
// nil; warnings and score are embedded in the JSON artifact.
func Render(ctx context.Context, doc *plan.Document, cols []plan.Column, warnings []plan.Warning, score analysis.Score, opts Options) (map[string][]byte, error) {
	theme, err := floor.ParseTheme(opts.Theme)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = floor.RenderSVG(doc, buildSVGOptions(theme, cols, opts)...)
		case FormatJSON:
			jsonOpts := []floor.JSONOption{
				floor.WithJSONWarnings(warnings),
				floor.WithJSONScore(score),
				floor.WithJSONIndent(),
			}
			if len(cols) > 0 {
				jsonOpts = append(jsonOpts, floor.WithJSONColumns(cols))
			}
			data, err = floor.RenderJSON(doc, jsonOpts...)
		case FormatDOT:
			data = []byte(adjacency.ToDOT(doc, adjacencyOptions(opts)))
		case FormatAdjacency:
			data, err = adjacency.RenderSVG(ctx, adjacency.ToDOT(doc, adjacencyOptions(opts)))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds floor drawing options.
func buildSVGOptions(theme floor.Theme, cols []plan.Column, opts Options) []floor.SVGOption {
	svgOpts := []floor.SVGOption{
		floor.WithFloor(opts.Floor),
		floor.WithTheme(theme),
		floor.WithScale(opts.Scale),
	}
	if len(cols) > 0 {
		svgOpts = append(svgOpts, floor.WithColumns(cols))
	}
	return svgOpts
}

func adjacencyOptions(opts Options) adjacency.Options {
	return adjacency.Options{Floor: opts.Floor, Detailed: opts.Detailed}
}
