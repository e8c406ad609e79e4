package geom

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 5, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 5, 5}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() not symmetric")
			}
		})
	}
}

func TestRectSharedEdge(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if got := a.SharedEdge(Rect{10, 4, 5, 10}, 0.01); math.Abs(got-6) > Epsilon {
		t.Errorf("vertical shared edge = %v, want 6", got)
	}
	if got := a.SharedEdge(Rect{2, 10, 3, 3}, 0.01); math.Abs(got-3) > Epsilon {
		t.Errorf("horizontal shared edge = %v, want 3", got)
	}
	if got := a.SharedEdge(Rect{10, 10, 3, 3}, 0.01); got != 0 {
		t.Errorf("corner touch = %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 20, 20}
	if !r.Contains(Point{20, 20}, 0) {
		t.Error("far corner should be inside (inclusive)")
	}
	if r.Contains(Point{20.05, 0}, 0) {
		t.Error("point past edge should be outside without tolerance")
	}
	if !r.Contains(Point{20.05, 0}, 0.1) {
		t.Error("point past edge should be inside with tolerance")
	}
}

func TestSnap(t *testing.T) {
	lines := []float64{0, 10, 10.3, 40}

	tests := []struct {
		name    string
		value   float64
		want    float64
		snapped bool
	}{
		{"exact", 10, 10, true},
		{"nearest wins", 10.2, 10.3, true},
		{"below threshold", 39.6, 40, true},
		{"outside threshold", 25, 25, false},
		{"at threshold is not snapped", 39.5, 39.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Snap(tt.value, lines, 0.5)
			if got != tt.want || ok != tt.snapped {
				t.Errorf("Snap(%v) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.want, tt.snapped)
			}
		})
	}
}

func TestAxisAccessors(t *testing.T) {
	r := Rect{1, 2, 3, 4}
	if r.Min(AxisX) != 1 || r.Max(AxisX) != 4 || r.Size(AxisX) != 3 {
		t.Errorf("x accessors wrong: %v %v %v", r.Min(AxisX), r.Max(AxisX), r.Size(AxisX))
	}
	if r.Min(AxisY) != 2 || r.Max(AxisY) != 6 || r.Size(AxisY) != 4 {
		t.Errorf("y accessors wrong: %v %v %v", r.Min(AxisY), r.Max(AxisY), r.Size(AxisY))
	}
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Error("Other() should flip the axis")
	}
}
