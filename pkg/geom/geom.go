// Package geom provides the axis-aligned geometry shared by the layout
// synthesizer, the column grid generator and the spatial editor.
//
// All coordinates are in plot feet. The origin is the top-left corner of the
// plot; X grows to the right and Y grows downward, matching how floor plans
// are drawn on screen.
package geom

import "math"

// Epsilon is the tolerance used for area and length comparisons.
const Epsilon = 1e-6

// Axis identifies one of the two plot axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Point is a position in plot feet.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Area returns W*H. Degenerate rectangles may report zero or negative area.
func (r Rect) Area() float64 { return r.W * r.H }

// Empty reports whether the rectangle has no positive extent.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Min returns the low coordinate along axis a.
func (r Rect) Min(a Axis) float64 {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// Max returns the high coordinate along axis a.
func (r Rect) Max(a Axis) float64 {
	if a == AxisX {
		return r.Right()
	}
	return r.Bottom()
}

// Size returns the extent along axis a.
func (r Rect) Size(a Axis) float64 {
	if a == AxisX {
		return r.W
	}
	return r.H
}

// Contains reports whether p lies inside r, edges included, widened by tol.
func (r Rect) Contains(p Point, tol float64) bool {
	return p.X >= r.X-tol && p.X <= r.Right()+tol &&
		p.Y >= r.Y-tol && p.Y <= r.Bottom()+tol
}

// Within reports whether r lies entirely inside outer, widened by tol.
func (r Rect) Within(outer Rect, tol float64) bool {
	return r.X >= outer.X-tol && r.Y >= outer.Y-tol &&
		r.Right() <= outer.Right()+tol && r.Bottom() <= outer.Bottom()+tol
}

// IntersectionArea returns the area shared by r and o, or 0 if they only touch.
func (r Rect) IntersectionArea(o Rect) float64 {
	w := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	h := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that share only an edge or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.IntersectionArea(o) > Epsilon
}

// SharedEdge returns the length of wall shared by r and o when they touch
// along a vertical or horizontal edge (within tol). It returns 0 when the
// rectangles are apart, overlap, or touch only at a corner.
func (r Rect) SharedEdge(o Rect, tol float64) float64 {
	if math.Abs(r.Right()-o.X) <= tol || math.Abs(o.Right()-r.X) <= tol {
		if l := overlap(r.Y, r.Bottom(), o.Y, o.Bottom()); l > tol {
			return l
		}
	}
	if math.Abs(r.Bottom()-o.Y) <= tol || math.Abs(o.Bottom()-r.Y) <= tol {
		if l := overlap(r.X, r.Right(), o.X, o.Right()); l > tol {
			return l
		}
	}
	return 0
}

func overlap(a0, a1, b0, b1 float64) float64 {
	return math.Min(a1, b1) - math.Max(a0, b0)
}

// Snap returns the line nearest to value when it lies within threshold.
// Ties keep the first line in order. The boolean reports whether a snap
// happened; when it is false value is returned unchanged.
func Snap(value float64, lines []float64, threshold float64) (float64, bool) {
	best, bestDist := value, math.Inf(1)
	for _, l := range lines {
		if d := math.Abs(value - l); d < threshold && d < bestDist {
			best, bestDist = l, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
