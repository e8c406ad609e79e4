// Package adjacency renders which rooms of a floor share a wall.
//
// [Edges] finds the shared walls; [ToDOT] turns them into a Graphviz graph and
// [RenderSVG] lays it out. Walls that carry a door of either room are drawn
// solid, plain walls dashed.
package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// wallTolerance is how far apart two walls may be and still count as shared.
const wallTolerance = 0.05

// Options configures adjacency rendering.
type Options struct {
	Floor int

	// Detailed adds room sizes to node labels and wall lengths to edges.
	Detailed bool
}

// Edge is a wall shared by two rooms.
type Edge struct {
	From, To plan.RoomID
	Length   float64
	Door     bool // a door of either room lies on the shared wall
}

// Edges returns every pair of rooms on floor f that share a wall of positive
// length, in document order.
func Edges(doc *plan.Document, f int) []Edge {
	rooms := doc.RoomsOnFloor(f)
	var out []Edge
	for i := 0; i < len(rooms); i++ {
		a := rooms[i].Rect()
		for j := i + 1; j < len(rooms); j++ {
			b := rooms[j].Rect()
			l := a.SharedEdge(b, wallTolerance)
			if l <= 0 {
				continue
			}
			out = append(out, Edge{
				From:   rooms[i].ID,
				To:     rooms[j].ID,
				Length: l,
				Door:   doorOnWall(rooms[i], b) || doorOnWall(rooms[j], a),
			})
		}
	}
	return out
}

// doorOnWall reports whether one of r's doors touches other.
func doorOnWall(r plan.Room, other geom.Rect) bool {
	for _, p := range r.DoorPoints() {
		if other.Contains(p, wallTolerance) {
			return true
		}
	}
	return false
}

// ToDOT converts the adjacency of one floor to Graphviz DOT.
func ToDOT(doc *plan.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, r := range doc.RoomsOnFloor(opts.Floor) {
		c := r.Rect().Center()
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.1f,%.1f\"];\n",
			string(r.ID), fmtLabel(r, opts.Detailed), c.X/4, -c.Y/4)
	}

	buf.WriteString("\n")
	for _, e := range Edges(doc, opts.Floor) {
		attrs := []string{}
		if !e.Door {
			attrs = append(attrs, "style=dashed")
		}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=\"%.0f'\"", e.Length))
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", string(e.From), string(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", string(e.From), string(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(r plan.Room, detailed bool) string {
	if !detailed {
		return r.Type
	}
	return fmt.Sprintf("%s\n%.0f' x %.0f'", r.Type, r.W, r.H)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one sized
// in pixels so the diagram scales like the floor drawings.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
