package synth

import (
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// baseStrategy runs a vertical corridor through the plot with the service
// wing to its left and the private wing to its right.
type baseStrategy struct{}

func (baseStrategy) Variant() Variant { return VariantBase }

func (baseStrategy) Describe() string {
	return "vertical corridor, service wing left, private wing right"
}

func (baseStrategy) Layout(p plan.Program) *plan.Document {
	b := newBuilder(VariantBase, p, floorsOf(p))
	service := (p.Width - CorridorWidth) * serviceShare
	corridor := geom.Rect{X: service, Y: 0, W: CorridorWidth, H: p.Depth}

	for f := 0; f < p.Floors; f++ {
		b.startFloor(f)
		b.corridor(corridor)

		sw := &wing{along: geom.AxisY, acrossMin: 0, acrossSize: service, corridorHigh: true, b: b}
		living := placeService(sw, p, p.Depth*livingShare)

		pw := &wing{along: geom.AxisY, acrossMin: corridor.Right(), acrossSize: p.Width - corridor.Right(), b: b}
		placePrivate(pw, p)

		if f+1 < p.Floors {
			b.stair(geom.Rect{X: service, Y: p.Depth * stairShare, W: stairWidth, H: stairLength})
		}
		placeBalcony(b, p, living)
	}
	placeSite(b.doc, p)
	return b.doc
}

// horizontalStrategy runs the corridor across the plot with the service wing
// above it and the private wing below.
type horizontalStrategy struct{}

func (horizontalStrategy) Variant() Variant { return VariantHorizontal }

func (horizontalStrategy) Describe() string {
	return "horizontal corridor, service wing top, private wing bottom"
}

func (horizontalStrategy) Layout(p plan.Program) *plan.Document {
	b := newBuilder(VariantHorizontal, p, floorsOf(p))
	service := (p.Depth - CorridorWidth) * serviceShare
	corridor := geom.Rect{X: 0, Y: service, W: p.Width, H: CorridorWidth}

	for f := 0; f < p.Floors; f++ {
		b.startFloor(f)
		b.corridor(corridor)

		sw := &wing{along: geom.AxisX, acrossMin: 0, acrossSize: service, corridorHigh: true, b: b}
		living := placeService(sw, p, p.Width*livingShare)

		pw := &wing{along: geom.AxisX, acrossMin: corridor.Bottom(), acrossSize: p.Depth - corridor.Bottom(), b: b}
		placePrivate(pw, p)

		if f+1 < p.Floors {
			b.stair(geom.Rect{X: p.Width * stairShare, Y: service, W: stairLength, H: stairWidth})
		}
		placeBalcony(b, p, living)
	}
	placeSite(b.doc, p)
	return b.doc
}

// leftCorridorStrategy runs the corridor along the left plot edge. Service
// and private rooms share one band to its right, private rooms continuing
// where the service rooms end.
type leftCorridorStrategy struct{}

func (leftCorridorStrategy) Variant() Variant { return VariantLeftCorridor }

func (leftCorridorStrategy) Describe() string {
	return "corridor on the left edge, service then private rooms stacked beside it"
}

func (leftCorridorStrategy) Layout(p plan.Program) *plan.Document {
	b := newBuilder(VariantLeftCorridor, p, floorsOf(p))
	corridor := geom.Rect{X: 0, Y: 0, W: CorridorWidth, H: p.Depth}

	for f := 0; f < p.Floors; f++ {
		b.startFloor(f)
		b.corridor(corridor)

		w := &wing{along: geom.AxisY, acrossMin: CorridorWidth, acrossSize: p.Width - CorridorWidth, b: b}
		living := placeService(w, p, p.Depth*livingShare)
		placePrivate(w, p)

		if f+1 < p.Floors {
			b.stair(geom.Rect{X: 0, Y: p.Depth * stairShare, W: stairWidth, H: stairLength})
		}
		placeBalcony(b, p, living)
	}
	placeSite(b.doc, p)
	return b.doc
}

func floorsOf(p plan.Program) int {
	if p.Floors < 0 {
		return 0
	}
	return p.Floors
}
