package synth

import (
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// luxuryStrategy lays out a single symmetric floor:
//
//	| suite wing | corridor | core | corridor | suite wing |
//
// Master suites alternate between the two suite wings, followed by kids
// bedrooms, guest rooms and bathrooms continuing the alternation. The core
// holds living, dining, kitchens, utility and the optional office. Each
// corridor carries its own stair shaft up to floor 1 even though the
// document declares a single floor; the shafts reserve space for a future
// storey. FloorCount follows rooms, not stairs, and Validate ignores stairs,
// so the dangling ToFloor raises no warning.
type luxuryStrategy struct{}

func (luxuryStrategy) Variant() Variant { return VariantLuxury }

func (luxuryStrategy) Describe() string {
	return "single floor, twin suite wings flanking a living/dining core"
}

func (luxuryStrategy) Layout(p plan.Program) *plan.Document {
	floors := 0
	if p.Floors > 0 {
		floors = 1
	}
	b := newBuilder(VariantLuxury, p, floors)
	if floors == 0 {
		placeSite(b.doc, p)
		return b.doc
	}
	b.startFloor(0)

	suite := (p.Width - 2*CorridorWidth) * suiteShare
	leftCorridor := geom.Rect{X: suite, Y: 0, W: CorridorWidth, H: p.Depth}
	rightCorridor := geom.Rect{X: p.Width - suite - CorridorWidth, Y: 0, W: CorridorWidth, H: p.Depth}
	b.corridor(leftCorridor)
	b.corridor(rightCorridor)

	core := &wing{
		along:      geom.AxisY,
		acrossMin:  leftCorridor.Right(),
		acrossSize: rightCorridor.X - leftCorridor.Right(),
		b:          b,
	}
	core.place(plan.TypeLiving, p.Depth*livingShare)
	core.place(plan.TypeDining, p.Depth*diningShare)
	for i := 0; i < p.Kitchens; i++ {
		core.place(plan.TypeKitchen, kitchenLength)
	}
	core.place(plan.TypeUtility, utilityLength)
	if p.Features.Office {
		core.place(plan.TypeOffice, officeLength)
	}

	wings := [2]*wing{
		{along: geom.AxisY, acrossMin: 0, acrossSize: suite, corridorHigh: true, b: b},
		{along: geom.AxisY, acrossMin: rightCorridor.Right(), acrossSize: p.Width - rightCorridor.Right(), b: b},
	}
	for i, it := range privateItems(p) {
		wings[i%2].placeItem(it)
	}

	b.stair(geom.Rect{X: leftCorridor.X, Y: p.Depth * stairShare, W: stairWidth, H: stairLength})
	b.stair(geom.Rect{X: rightCorridor.X, Y: p.Depth * stairShare, W: stairWidth, H: stairLength})

	placeSite(b.doc, p)
	return b.doc
}
