package floor

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// DefaultScale is pixels per foot.
const DefaultScale = 10.0

const (
	margin      = 2.0 // feet of padding around the drawing
	doorWidth   = 3.0 // feet
	windowWidth = 3.0 // feet
	treads      = 8
	columnPx    = 4.0
	wallTol     = 0.5 // feet; opening-to-wall distance that still counts as on the wall
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	floor   int
	scale   float64
	theme   Theme
	columns []plan.Column
	labels  bool
}

func WithFloor(f int) SVGOption                { return func(r *svgRenderer) { r.floor = f } }
func WithTheme(t Theme) SVGOption              { return func(r *svgRenderer) { r.theme = t } }
func WithColumns(cols []plan.Column) SVGOption { return func(r *svgRenderer) { r.columns = cols } }
func WithoutLabels() SVGOption                 { return func(r *svgRenderer) { r.labels = false } }
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: DefaultScale, theme: Dark, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws one floor of doc. The drawing covers the plot plus any rooms
// or extras outside it, in plot coordinates scaled to pixels.
func RenderSVG(doc *plan.Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	bounds := r.bounds(doc)
	s := r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		bounds.X*s, bounds.Y*s, bounds.W*s, bounds.H*s, bounds.W*s, bounds.H*s)
	r.renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		bounds.X*s, bounds.Y*s, bounds.W*s, bounds.H*s, r.theme.Background)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#grid)"/>`+"\n",
		bounds.X*s, bounds.Y*s, bounds.W*s, bounds.H*s)

	fmt.Fprintf(&buf, `  <rect class="plot" x="0" y="0" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="10 5"/>`+"\n",
		doc.Plot.Width*s, doc.Plot.Depth*s, r.theme.Boundary)

	for _, e := range doc.Extras {
		if e.Floor == r.floor {
			r.renderShape(&buf, "extra", "", e.Type, e.Rect())
		}
	}
	rooms := doc.RoomsOnFloor(r.floor)
	for _, rm := range rooms {
		r.renderShape(&buf, "room", string(rm.ID), rm.Type, rm.Rect())
	}
	for _, rm := range rooms {
		for _, w := range rm.Windows {
			r.renderWindow(&buf, rm, w)
		}
		for _, d := range rm.Doors {
			r.renderDoor(&buf, rm, d)
		}
	}
	for _, st := range doc.Stairs {
		if st.FromFloor == r.floor {
			r.renderStair(&buf, st)
		}
	}
	for _, c := range r.columns {
		if c.Floor == r.floor {
			fmt.Fprintf(&buf, `  <rect class="column" x="%.1f" y="%.1f" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
				c.X*s-columnPx/2, c.Y*s-columnPx/2, columnPx, columnPx, r.theme.Column)
		}
	}
	if r.labels {
		for _, e := range doc.Extras {
			if e.Floor == r.floor {
				r.renderLabel(&buf, e.Type, e.Rect())
			}
		}
		for _, rm := range rooms {
			r.renderLabel(&buf, rm.Type, rm.Rect())
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// bounds returns the drawing extent in feet: the plot, every room and extra
// on the floor, padded by a margin.
func (r *svgRenderer) bounds(doc *plan.Document) geom.Rect {
	minX, minY := 0.0, 0.0
	maxX, maxY := doc.Plot.Width, doc.Plot.Depth
	grow := func(rc geom.Rect) {
		minX, minY = math.Min(minX, rc.X), math.Min(minY, rc.Y)
		maxX, maxY = math.Max(maxX, rc.Right()), math.Max(maxY, rc.Bottom())
	}
	for _, rm := range doc.Rooms {
		if rm.Floor == r.floor {
			grow(rm.Rect())
		}
	}
	for _, e := range doc.Extras {
		if e.Floor == r.floor {
			grow(e.Rect())
		}
	}
	return geom.Rect{X: minX - margin, Y: minY - margin, W: maxX - minX + 2*margin, H: maxY - minY + 2*margin}
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <pattern id="grid" width="20" height="20" patternUnits="userSpaceOnUse">
      <path d="M 20 0 L 0 0 0 20" fill="none" stroke="%s" stroke-width="1"/>
    </pattern>
  </defs>
`, r.theme.Grid)
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, class, id, kind string, rc geom.Rect) {
	s := r.scale
	color := r.theme.RoomColor(kind)
	idAttr := ""
	if id != "" {
		idAttr = fmt.Sprintf(` id="room-%s"`, escapeXML(id))
	}
	fmt.Fprintf(buf, `  <rect class="%s"%s x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
		class, idAttr, rc.X*s, rc.Y*s, rc.W*s, rc.H*s, color, r.theme.RoomFill, color)
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, kind string, rc geom.Rect) {
	s := r.scale
	c := rc.Center()
	name := title(kind)
	if name == "" {
		name = "Room"
	}
	size := fontSize(rc.W*s, rc.H*s, len(name))
	name = truncate(name, rc.W*s, size)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
		c.X*s, c.Y*s-size/2, size, r.theme.Text, escapeXML(name))
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle">%d' x %d'</text>`+"\n",
		c.X*s, c.Y*s+size, size*0.8, r.theme.SubText, int(math.Round(rc.W)), int(math.Round(rc.H)))
}

// wall reports which wall of rm an opening sits on.
func wall(rm plan.Room, o plan.Opening) (top, bottom, left, right bool) {
	top = o.Y <= wallTol
	bottom = math.Abs(o.Y-rm.H) <= wallTol
	left = o.X <= wallTol
	right = math.Abs(o.X-rm.W) <= wallTol
	return
}

// renderDoor draws a door gap with a quarter-circle swing into the room.
func (r *svgRenderer) renderDoor(buf *bytes.Buffer, rm plan.Room, d plan.Opening) {
	s := r.scale
	cx, cy := (rm.X+d.X)*s, (rm.Y+d.Y)*s
	w := doorWidth * s
	top, bottom, left, right := wall(rm, d)

	var gap geom.Rect
	var path string
	switch {
	case top:
		gap = geom.Rect{X: cx - w/2, Y: cy - 2, W: w, H: 4}
		path = fmt.Sprintf("M %.1f,%.1f A %.1f,%.1f 0 0 1 %.1f,%.1f L %.1f,%.1f", cx-w/2, cy, w, w, cx+w/2, cy+w, cx-w/2, cy+w)
	case bottom:
		gap = geom.Rect{X: cx - w/2, Y: cy - 2, W: w, H: 4}
		path = fmt.Sprintf("M %.1f,%.1f A %.1f,%.1f 0 0 0 %.1f,%.1f L %.1f,%.1f", cx-w/2, cy, w, w, cx+w/2, cy-w, cx-w/2, cy-w)
	case left:
		gap = geom.Rect{X: cx - 2, Y: cy - w/2, W: 4, H: w}
		path = fmt.Sprintf("M %.1f,%.1f A %.1f,%.1f 0 0 0 %.1f,%.1f L %.1f,%.1f", cx, cy-w/2, w, w, cx+w, cy+w/2, cx+w, cy-w/2)
	case right:
		gap = geom.Rect{X: cx - 2, Y: cy - w/2, W: 4, H: w}
		path = fmt.Sprintf("M %.1f,%.1f A %.1f,%.1f 0 0 1 %.1f,%.1f L %.1f,%.1f", cx, cy-w/2, w, w, cx-w, cy+w/2, cx-w, cy-w/2)
	default:
		fmt.Fprintf(buf, `  <circle class="door" cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", cx, cy, r.theme.Door)
		return
	}
	fmt.Fprintf(buf, `  <g class="door"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/><path d="%s" stroke="%s" fill="none" stroke-width="1.5"/></g>`+"\n",
		gap.X, gap.Y, gap.W, gap.H, r.theme.Background, path, r.theme.Door)
}

// renderWindow draws a window as a short double line along the wall.
func (r *svgRenderer) renderWindow(buf *bytes.Buffer, rm plan.Room, o plan.Opening) {
	s := r.scale
	cx, cy := (rm.X+o.X)*s, (rm.Y+o.Y)*s
	half := windowWidth * s / 2
	top, bottom, _, _ := wall(rm, o)
	x1, y1, x2, y2 := cx, cy-half, cx, cy+half
	if top || bottom {
		x1, y1, x2, y2 = cx-half, cy, cx+half, cy
	}
	fmt.Fprintf(buf, `  <line class="window" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4"/>`+"\n",
		x1, y1, x2, y2, r.theme.Window)
}

func (r *svgRenderer) renderStair(buf *bytes.Buffer, st plan.Stair) {
	s := r.scale
	fmt.Fprintf(buf, `  <g class="stair"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1"/>`,
		st.X*s, st.Y*s, st.W*s, st.H*s, r.theme.Stair)
	// Treads run across the longer side.
	for i := 0; i < treads; i++ {
		if st.H >= st.W {
			y := (st.Y + float64(i)*st.H/treads) * s
			fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`, st.X*s, y, (st.X+st.W)*s, y, r.theme.Tread)
		} else {
			x := (st.X + float64(i)*st.W/treads) * s
			fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`, x, st.Y*s, x, (st.Y+st.H)*s, r.theme.Tread)
		}
	}
	c := st.Rect().Center()
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="10" fill="%s" text-anchor="middle">UP</text></g>`+"\n",
		c.X*s, c.Y*s, r.theme.Stair)
}
