package synth

import (
	"strconv"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// builder accumulates rooms for one document and derives stable ids from the
// variant, floor, room type and the room's ordinal within that type.
type builder struct {
	doc     *plan.Document
	variant Variant
	floor   int
	seq     map[string]int
}

func newBuilder(v Variant, p plan.Program, floors int) *builder {
	return &builder{
		doc:     plan.NewDocument(string(v), p.Plot(), floors),
		variant: v,
	}
}

func (b *builder) startFloor(f int) {
	b.floor = f
	b.seq = make(map[string]int)
}

func (b *builder) add(kind string, rc geom.Rect, doors, windows []plan.Opening) {
	n := b.seq[kind]
	b.seq[kind] = n + 1
	r := plan.Room{
		ID:      plan.DerivedRoomID(string(b.variant), strconv.Itoa(b.floor), kind, strconv.Itoa(n)),
		Type:    kind,
		Floor:   b.floor,
		Doors:   doors,
		Windows: windows,
	}
	r.SetRect(rc)
	b.doc.AddRoom(r)
}

func (b *builder) corridor(rc geom.Rect) {
	b.add(plan.TypeCorridor, rc, nil, nil)
}

// stair adds a stair from the current floor to the next.
func (b *builder) stair(rc geom.Rect) {
	b.doc.Stairs = append(b.doc.Stairs, plan.Stair{
		X: rc.X, Y: rc.Y, W: rc.W, H: rc.H,
		FromFloor: b.floor,
		ToFloor:   b.floor + 1,
	})
}

// wing is a band of rooms stacked along one axis. The band spans
// [acrossMin, acrossMin+acrossSize) on the other axis. corridorHigh is true
// when the corridor borders the band's high across edge.
type wing struct {
	along        geom.Axis
	acrossMin    float64
	acrossSize   float64
	corridorHigh bool

	b      *builder
	cursor float64
}

func (w *wing) rect(pos, length float64) geom.Rect {
	if w.along == geom.AxisY {
		return geom.Rect{X: w.acrossMin, Y: pos, W: w.acrossSize, H: length}
	}
	return geom.Rect{X: pos, Y: w.acrossMin, W: length, H: w.acrossSize}
}

// openings returns the door on the corridor edge and the window on the
// opposite edge, both at the edge midpoint and relative to the room origin.
func (w *wing) openings(rc geom.Rect) (door, window plan.Opening) {
	lo, hi := 0.0, rc.W
	mid := rc.H / 2
	if w.along == geom.AxisX {
		lo, hi = 0, rc.H
		mid = rc.W / 2
	}
	doorAt, windowAt := lo, hi
	if w.corridorHigh {
		doorAt, windowAt = hi, lo
	}
	if w.along == geom.AxisY {
		return plan.Opening{X: doorAt, Y: mid}, plan.Opening{X: windowAt, Y: mid}
	}
	return plan.Opening{X: mid, Y: doorAt}, plan.Opening{X: mid, Y: windowAt}
}

// place appends a room of the given length at the cursor and advances it.
func (w *wing) place(kind string, length float64) geom.Rect {
	rc := w.rect(w.cursor, length)
	w.cursor += length
	door, window := w.openings(rc)
	w.b.add(kind, rc, []plan.Opening{door}, []plan.Opening{window})
	return rc
}

// placeService stacks the living room and, on the ground floor, the kitchens
// and the optional office. It returns the living room's footprint.
func placeService(w *wing, p plan.Program, living float64) geom.Rect {
	rc := w.place(plan.TypeLiving, living)
	if w.b.floor != 0 {
		return rc
	}
	for i := 0; i < p.Kitchens; i++ {
		w.place(plan.TypeKitchen, kitchenLength)
	}
	if p.Features.Office {
		w.place(plan.TypeOffice, officeLength)
	}
	return rc
}

// privateItem is a run of rooms that stays together in one wing.
type privateItem []struct {
	kind   string
	length float64
}

// privateItems returns the private program in placement order: master suites
// (bedroom with attached bath), kids bedrooms, guest rooms, then bathrooms.
func privateItems(p plan.Program) []privateItem {
	mb := p.MasterBedroomSize.Multiplier()
	bm := p.BathroomSize.Multiplier()

	var out []privateItem
	single := func(kind string, length float64) privateItem {
		return privateItem{{kind, length}}
	}
	for i := 0; i < p.MasterBedrooms; i++ {
		out = append(out, privateItem{
			{plan.TypeMasterBedroom, masterLength * mb},
			{plan.TypeMasterBath, masterBathLength * bm},
		})
	}
	for i := 0; i < p.KidsBedrooms; i++ {
		out = append(out, single(plan.TypeKidsBedroom, kidsLength))
	}
	for i := 0; i < p.GuestRooms; i++ {
		out = append(out, single(plan.TypeGuestRoom, guestLength))
	}
	for i := 0; i < p.Bathrooms; i++ {
		out = append(out, single(plan.TypeBathroom, bathLength*bm))
	}
	return out
}

func (w *wing) placeItem(it privateItem) {
	for _, r := range it {
		w.place(r.kind, r.length)
	}
}

// placePrivate stacks the whole private program into one wing.
func placePrivate(w *wing, p plan.Program) {
	for _, it := range privateItems(p) {
		w.placeItem(it)
	}
}
