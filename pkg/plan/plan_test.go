package plan

import (
	"testing"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
)

func TestDocumentIDOperations(t *testing.T) {
	d := NewDocument("base", Plot{Width: 40, Depth: 60}, 1)
	a := d.AddRoom(Room{Type: TypeLiving, W: 10, H: 10})
	b := d.AddRoom(Room{ID: "fixed", Type: TypeKitchen, X: 10, W: 10, H: 10})
	c := d.AddRoom(Room{Type: TypeOffice, X: 20, W: 10, H: 10})

	if a == "" || b != "fixed" {
		t.Fatalf("ids = %q, %q", a, b)
	}
	if err := d.RemoveRoom(a); err != nil {
		t.Fatal(err)
	}
	// c moved from index 2 to 1; id lookup must still find it.
	if err := d.UpdateRoom(c, geom.Rect{X: 1, Y: 2, W: 3, H: 4}); err != nil {
		t.Fatal(err)
	}
	r, ok := d.Room(c)
	if !ok || r.X != 1 || r.Y != 2 || r.W != 3 || r.H != 4 || r.Type != TypeOffice {
		t.Errorf("Room(c) = %+v, %v", r, ok)
	}
	if _, ok := d.Room(a); ok {
		t.Error("removed room still found")
	}
	if err := d.RemoveRoom(a); !errors.Is(err, errors.ErrCodeRoomNotFound) {
		t.Errorf("second RemoveRoom err = %v", err)
	}
	if err := d.UpdateRoom("nope", geom.Rect{}); !errors.Is(err, errors.ErrCodeRoomNotFound) {
		t.Errorf("UpdateRoom unknown err = %v", err)
	}
}

func TestDocumentDecodedIndex(t *testing.T) {
	// A document built without AddRoom, as after decoding, indexes lazily.
	d := &Document{Rooms: []Room{{ID: "x", Type: TypeLiving}, {ID: "y", Type: TypeKitchen}}}
	if r, ok := d.Room("y"); !ok || r.Type != TypeKitchen {
		t.Errorf("Room(y) = %+v, %v", r, ok)
	}
}

func TestDocumentNormalizeIDs(t *testing.T) {
	d := &Document{Rooms: []Room{
		{Type: TypeLiving, W: 10, H: 10},
		{Type: TypeKitchen, X: 20, W: 10, H: 10},
		{ID: "dup", Type: TypeOffice},
		{ID: "dup", Type: TypeBathroom},
	}}
	d.Normalize()

	seen := map[RoomID]bool{}
	for _, r := range d.Rooms {
		if r.ID == "" || seen[r.ID] {
			t.Fatalf("room %s has id %q, want a unique id", r.Type, r.ID)
		}
		seen[r.ID] = true
	}
	if d.Rooms[2].ID != "dup" {
		t.Errorf("first holder of an id lost it: %q", d.Rooms[2].ID)
	}

	if err := d.UpdateRoom(d.Rooms[0].ID, geom.Rect{X: 5, W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	if d.Rooms[0].X != 5 || d.Rooms[1].X != 20 {
		t.Errorf("living X = %g, kitchen X = %g; want 5 and 20", d.Rooms[0].X, d.Rooms[1].X)
	}
}

func TestDocumentMissingIDsIndexLazily(t *testing.T) {
	d := &Document{Rooms: []Room{{Type: TypeLiving}, {Type: TypeKitchen}}}
	if _, ok := d.Room(""); ok {
		t.Error("Room(\"\") resolved a room")
	}
	if d.Rooms[0].ID == "" || d.Rooms[0].ID == d.Rooms[1].ID {
		t.Errorf("ids = %q, %q; want distinct", d.Rooms[0].ID, d.Rooms[1].ID)
	}
}

func TestDocumentClone(t *testing.T) {
	d := NewDocument("base", Plot{Width: 10, Depth: 10}, 1)
	id := d.AddRoom(Room{Type: TypeLiving, W: 5, H: 5, Doors: []Opening{{X: 1, Y: 0}}})
	c := d.Clone()
	_ = c.UpdateRoom(id, geom.Rect{W: 9, H: 9})
	c.Rooms[0].Doors[0].X = 4

	r, _ := d.Room(id)
	if r.W != 5 || r.Doors[0].X != 1 {
		t.Errorf("Clone aliases the original: %+v", r)
	}
}

func TestCountsAndFloors(t *testing.T) {
	d := NewDocument("base", Plot{Width: 10, Depth: 10}, 1)
	d.AddRoom(Room{Type: TypeBathroom, Floor: 0})
	d.AddRoom(Room{Type: TypeBathroom, Floor: 2})
	if n := d.CountByType(TypeBathroom, -1); n != 2 {
		t.Errorf("all floors = %d, want 2", n)
	}
	if n := d.CountByType(TypeBathroom, 2); n != 1 {
		t.Errorf("floor 2 = %d, want 1", n)
	}
	if n := d.FloorCount(); n != 3 {
		t.Errorf("FloorCount = %d, want 3", n)
	}
	if n := len(d.RoomsOnFloor(1)); n != 0 {
		t.Errorf("RoomsOnFloor(1) = %d, want 0", n)
	}
}

func TestValidate(t *testing.T) {
	d := NewDocument("base", Plot{Width: 20, Depth: 20}, 1)
	a := d.AddRoom(Room{Type: "a", X: 0, Y: 0, W: 10, H: 10})
	b := d.AddRoom(Room{Type: "b", X: 5, Y: 5, W: 10, H: 10})
	d.AddRoom(Room{Type: "touching", X: 15, Y: 0, W: 5, H: 5})
	out := d.AddRoom(Room{Type: "out", X: 15, Y: 15, W: 10, H: 10, Floor: 1})
	flat := d.AddRoom(Room{Type: "flat", X: 0, Y: 0, W: 0, H: 10, Floor: 1})

	got := Validate(d)
	want := []struct {
		code WarningCode
		ids  []RoomID
	}{
		{WarnOverlap, []RoomID{a, b}},
		{WarnDegenerate, []RoomID{flat}},
		{WarnOutOfPlot, []RoomID{out}},
	}
	if len(got) != len(want) {
		t.Fatalf("Validate = %v, want %d warnings", got, len(want))
	}
	for i, w := range want {
		if got[i].Code != w.code {
			t.Errorf("[%d] code = %s, want %s", i, got[i].Code, w.code)
			continue
		}
		if len(got[i].RoomIDs) != len(w.ids) {
			t.Errorf("[%d] ids = %v, want %v", i, got[i].RoomIDs, w.ids)
			continue
		}
		for j := range w.ids {
			if got[i].RoomIDs[j] != w.ids[j] {
				t.Errorf("[%d] ids = %v, want %v", i, got[i].RoomIDs, w.ids)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	d := NewDocument("base", Plot{Width: 20, Depth: 20}, 1)
	a := d.AddRoom(Room{X: 0, Y: 0, W: 10, H: 10})
	if d.Overlaps(geom.Rect{X: 10, Y: 0, W: 5, H: 5}, 0, "") {
		t.Error("touching rectangle reported as overlap")
	}
	if !d.Overlaps(geom.Rect{X: 9, Y: 0, W: 5, H: 5}, 0, "") {
		t.Error("overlap not reported")
	}
	if d.Overlaps(geom.Rect{X: 9, Y: 0, W: 5, H: 5}, 0, a) {
		t.Error("skipped room reported")
	}
	if d.Overlaps(geom.Rect{X: 9, Y: 0, W: 5, H: 5}, 1, "") {
		t.Error("room on another floor reported")
	}
}

func TestProgramNormalize(t *testing.T) {
	p, err := Program{Facing: "south", MasterBedroomSize: "big"}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if p.Facing != South || p.MasterBedroomSize != SizeBig || p.BathroomSize != SizeStandard {
		t.Errorf("Normalize = %+v", p)
	}

	_, err = Program{Facing: "up"}.Normalize()
	if !errors.Is(err, errors.ErrCodeInvalidFacing) {
		t.Errorf("facing err = %v", err)
	}
	_, err = Program{Facing: "North", BathroomSize: "huge"}.Normalize()
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("size err = %v", err)
	}
}

func TestProgramWarnings(t *testing.T) {
	p := Program{Width: 0, Depth: 10, Floors: 0, Kitchens: -1, Facing: "Up"}
	codes := make(map[WarningCode]int)
	for _, w := range p.Warnings() {
		codes[w.Code]++
		if w.Floor != -1 {
			t.Errorf("%s floor = %d, want -1", w.Code, w.Floor)
		}
	}
	want := map[WarningCode]int{WarnProgramPlot: 1, WarnProgramFloors: 1, WarnProgramCount: 1, WarnProgramFacing: 1}
	for c, n := range want {
		if codes[c] != n {
			t.Errorf("%s = %d, want %d", c, codes[c], n)
		}
	}

	ok := Program{Width: 40, Depth: 60, Floors: 1, Facing: North}
	if w := ok.Warnings(); len(w) != 0 {
		t.Errorf("valid program warnings = %v", w)
	}
}

func TestSizeTierMultiplier(t *testing.T) {
	tests := map[SizeTier]float64{SizeSmall: 0.8, SizeStandard: 1.0, SizeBig: 1.3, "": 1.0, "odd": 1.0}
	for s, want := range tests {
		if got := s.Multiplier(); got != want {
			t.Errorf("%q.Multiplier() = %g, want %g", s, got, want)
		}
	}
}

func TestDerivedRoomID(t *testing.T) {
	a := DerivedRoomID("base", "0", "kitchen", "0")
	b := DerivedRoomID("base", "0", "kitchen", "0")
	c := DerivedRoomID("base", "0", "kitchen", "1")
	if a != b {
		t.Error("DerivedRoomID is not deterministic")
	}
	if a == c {
		t.Error("different slots share an id")
	}
	if NewRoomID() == NewRoomID() {
		t.Error("NewRoomID repeated")
	}
}
