// Package render groups the output sinks for floor plan documents.
//
// Renderers are thin consumers: they read a [plan.Document] and never change
// it.
//
//   - [floor]: one floor drawn as SVG (rooms, openings, stairs, extras and
//     an optional column overlay), plus the JSON document sink.
//   - [adjacency]: the room adjacency graph as Graphviz DOT, rendered to SVG
//     through go-graphviz.
//
//	svg := floor.RenderSVG(doc, floor.WithFloor(1), floor.WithColumns(cols))
//	dot := adjacency.ToDOT(doc, adjacency.Options{Floor: 1})
//	out, err := adjacency.RenderSVG(ctx, dot)
//
// [plan.Document]: github.com/matzehuels/floorsmith/pkg/plan
// [floor]: github.com/matzehuels/floorsmith/pkg/render/floor
// [adjacency]: github.com/matzehuels/floorsmith/pkg/render/adjacency
package render
