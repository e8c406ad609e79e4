package synth

import (
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// side is the plot edge site extras are placed against.
type side int

const (
	sideBottom side = iota // y = 0
	sideTop                // y = depth
	sideLeft               // x = 0
	sideRight              // x = width
)

// siteSide maps the entrance direction to the plot edge that receives the
// site extras. A North entrance puts them along y = 0, South along y = depth,
// East along x = 0 and West along x = width.
func siteSide(f plan.Facing) (side, bool) {
	switch f {
	case plan.North:
		return sideBottom, true
	case plan.South:
		return sideTop, true
	case plan.East:
		return sideLeft, true
	case plan.West:
		return sideRight, true
	}
	return 0, false
}

var siteExtras = []struct {
	kind    string
	w, h    float64
	enabled func(plan.Features) bool
}{
	{plan.ExtraGarden, 15, 10, func(f plan.Features) bool { return f.Garden }},
	{plan.ExtraParking, 12, 18, func(f plan.Features) bool { return f.Parking }},
	{plan.ExtraGarage, 12, 18, func(f plan.Features) bool { return f.Garage }},
}

// placeSite appends the enabled garden, parking and garage outside the plot
// edge selected by the facing. Extras on one side are staggered along that
// edge with a fixed gap; they sit flush against the edge, outside the plot.
// An undefined facing places nothing.
func placeSite(doc *plan.Document, p plan.Program) {
	s, ok := siteSide(p.Facing)
	if !ok {
		return
	}
	width, depth := p.Width, p.Depth
	offset := 0.0
	for _, e := range siteExtras {
		if !e.enabled(p.Features) {
			continue
		}
		var rc geom.Rect
		switch s {
		case sideBottom:
			rc = geom.Rect{X: siteShare*width + offset, Y: -e.h, W: e.w, H: e.h}
			offset += e.w + siteGap
		case sideTop:
			rc = geom.Rect{X: siteShare*width + offset, Y: depth, W: e.w, H: e.h}
			offset += e.w + siteGap
		case sideLeft:
			rc = geom.Rect{X: -e.w, Y: siteShare*depth + offset, W: e.w, H: e.h}
			offset += e.h + siteGap
		case sideRight:
			rc = geom.Rect{X: width, Y: siteShare*depth + offset, W: e.w, H: e.h}
			offset += e.h + siteGap
		}
		doc.Extras = append(doc.Extras, plan.Extra{
			Type: e.kind, X: rc.X, Y: rc.Y, W: rc.W, H: rc.H, Floor: 0,
		})
	}
}

// placeBalcony attaches a balcony above the living room's top edge, centred
// on half of that edge. Balconies exist on upper floors only.
func placeBalcony(b *builder, p plan.Program, living geom.Rect) {
	if !p.Features.Balcony || b.floor == 0 {
		return
	}
	b.doc.Extras = append(b.doc.Extras, plan.Extra{
		Type:  plan.ExtraBalcony,
		X:     living.X + living.W*balconyOffset,
		Y:     living.Y - balconyDepth,
		W:     living.W * balconyShare,
		H:     balconyDepth,
		Floor: b.floor,
	})
}
