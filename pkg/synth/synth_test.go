package synth

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

func exampleProgram() plan.Program {
	return plan.Program{
		Width:          40,
		Depth:          60,
		Floors:         2,
		MasterBedrooms: 1,
		KidsBedrooms:   2,
		GuestRooms:     1,
		Kitchens:       1,
		Bathrooms:      2,
		Facing:         plan.South,
		Features:       plan.Features{Garden: true, Parking: true, Balcony: true},
	}
}

func TestGenerateExampleBase(t *testing.T) {
	p := exampleProgram()
	doc, err := Generate(p, VariantBase)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := map[int]map[string]int{
		0: {
			plan.TypeCorridor: 1, plan.TypeLiving: 1, plan.TypeKitchen: 1,
			plan.TypeMasterBedroom: 1, plan.TypeMasterBath: 1, plan.TypeKidsBedroom: 2,
			plan.TypeGuestRoom: 1, plan.TypeBathroom: 2, plan.TypeOffice: 0,
		},
		1: {
			plan.TypeCorridor: 1, plan.TypeLiving: 1, plan.TypeKitchen: 0,
			plan.TypeMasterBedroom: 1, plan.TypeMasterBath: 1, plan.TypeKidsBedroom: 2,
			plan.TypeGuestRoom: 1, plan.TypeBathroom: 2, plan.TypeOffice: 0,
		},
	}
	for floor, counts := range want {
		for kind, n := range counts {
			if got := doc.CountByType(kind, floor); got != n {
				t.Errorf("floor %d: %s count = %d, want %d", floor, kind, got, n)
			}
		}
	}

	if len(doc.Stairs) != 1 {
		t.Fatalf("stairs = %d, want 1", len(doc.Stairs))
	}
	if s := doc.Stairs[0]; s.FromFloor != 0 || s.ToFloor != 1 {
		t.Errorf("stair = %d->%d, want 0->1", s.FromFloor, s.ToFloor)
	}

	var balconies, gardens, parkings int
	for _, e := range doc.Extras {
		switch e.Type {
		case plan.ExtraBalcony:
			balconies++
			if e.Floor != 1 {
				t.Errorf("balcony on floor %d, want 1", e.Floor)
			}
		case plan.ExtraGarden, plan.ExtraParking:
			if e.Type == plan.ExtraGarden {
				gardens++
			} else {
				parkings++
			}
			if e.Y < p.Depth {
				t.Errorf("%s at y=%g, want outside the top edge (y >= %g)", e.Type, e.Y, p.Depth)
			}
		case plan.ExtraGarage:
			t.Errorf("unexpected garage")
		}
	}
	if balconies != 1 || gardens != 1 || parkings != 1 {
		t.Errorf("extras: balcony=%d garden=%d parking=%d, want 1 each", balconies, gardens, parkings)
	}

	if w := plan.Validate(doc); len(w) != 0 {
		t.Errorf("Validate = %v, want no warnings", w)
	}
}

func TestDeterminism(t *testing.T) {
	p := exampleProgram()
	p.Features.Office = true
	p.Features.Garage = true
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) {
			a, err := Generate(p, v)
			if err != nil {
				t.Fatal(err)
			}
			b, _ := Generate(p, v)
			if !reflect.DeepEqual(a.Rooms, b.Rooms) || !reflect.DeepEqual(a.Stairs, b.Stairs) ||
				!reflect.DeepEqual(a.Extras, b.Extras) {
				t.Error("two runs produced different documents")
			}
		})
	}
}

// randomProgram draws a valid program from r.
func randomProgram(r *rand.Rand) plan.Program {
	facings := []plan.Facing{plan.North, plan.South, plan.East, plan.West}
	return plan.Program{
		Width:          float64(30 + r.IntN(60)),
		Depth:          float64(40 + r.IntN(60)),
		Floors:         1 + r.IntN(3),
		MasterBedrooms: r.IntN(3),
		KidsBedrooms:   r.IntN(4),
		GuestRooms:     r.IntN(3),
		Kitchens:       1 + r.IntN(2),
		Bathrooms:      r.IntN(4),
		Facing:         facings[r.IntN(len(facings))],
		Features: plan.Features{
			Office:  r.IntN(2) == 0,
			Garden:  r.IntN(2) == 0,
			Parking: r.IntN(2) == 0,
			Garage:  r.IntN(2) == 0,
			Balcony: r.IntN(2) == 0,
		},
	}
}

func TestRoomCountsAcrossVariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	for i := range 50 {
		p := randomProgram(rng)
		for _, v := range Variants {
			doc, err := Generate(p, v)
			if err != nil {
				t.Fatal(err)
			}
			floors := p.Floors
			if v == VariantLuxury {
				floors = 1
			}
			for f := range p.Floors {
				want := map[string]int{
					plan.TypeMasterBedroom: p.MasterBedrooms,
					plan.TypeMasterBath:    p.MasterBedrooms,
					plan.TypeKidsBedroom:   p.KidsBedrooms,
					plan.TypeGuestRoom:     p.GuestRooms,
					plan.TypeBathroom:      p.Bathrooms,
					plan.TypeKitchen:       0,
				}
				if f == 0 {
					want[plan.TypeKitchen] = p.Kitchens
				}
				if f >= floors {
					for k := range want {
						want[k] = 0
					}
				}
				for kind, n := range want {
					if got := doc.CountByType(kind, f); got != n {
						t.Errorf("program %d %s floor %d: %s = %d, want %d (%+v)", i, v, f, kind, got, n, p)
					}
				}
			}

			again, _ := Generate(p, v)
			if !reflect.DeepEqual(doc.Rooms, again.Rooms) || !reflect.DeepEqual(doc.Extras, again.Extras) {
				t.Errorf("program %d %s: layout is not deterministic", i, v)
			}
		}
	}
}

func TestRoomIDsUnique(t *testing.T) {
	p := exampleProgram()
	for _, doc := range Synthesize(p) {
		seen := make(map[plan.RoomID]bool)
		for _, r := range doc.Rooms {
			if seen[r.ID] {
				t.Errorf("%s: duplicate id %s", doc.Variant, r.ID)
			}
			seen[r.ID] = true
		}
	}
}

func TestSynthesizeOrder(t *testing.T) {
	docs := Synthesize(exampleProgram())
	if len(docs) != len(Variants) {
		t.Fatalf("got %d documents, want %d", len(docs), len(Variants))
	}
	for i, v := range Variants {
		if docs[i].Variant != string(v) {
			t.Errorf("docs[%d].Variant = %q, want %q", i, docs[i].Variant, v)
		}
	}
}

func TestGenerateUnknownVariant(t *testing.T) {
	_, err := Generate(exampleProgram(), Variant("spiral"))
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
	if !errors.Is(err, errors.ErrCodeInvalidVariant) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidVariant)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"base", VariantBase, false},
		{"Horizontal", VariantHorizontal, false},
		{" left-corridor ", VariantLeftCorridor, false},
		{"LUXURY", VariantLuxury, false},
		{"", "", true},
		{"spiral", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpeningsFaceCorridor(t *testing.T) {
	doc, _ := Generate(exampleProgram(), VariantBase)
	var corridor geom.Rect
	for _, r := range doc.RoomsOnFloor(0) {
		if r.Type == plan.TypeCorridor {
			corridor = r.Rect()
		}
	}
	for _, r := range doc.RoomsOnFloor(0) {
		if r.Type == plan.TypeCorridor {
			continue
		}
		if len(r.Doors) != 1 || len(r.Windows) != 1 {
			t.Fatalf("%s: doors=%d windows=%d, want 1 each", r.Type, len(r.Doors), len(r.Windows))
		}
		door := r.DoorPoints()[0]
		if door.X != corridor.X && door.X != corridor.Right() {
			t.Errorf("%s door at x=%g, not on a corridor edge (%g or %g)", r.Type, door.X, corridor.X, corridor.Right())
		}
		if r.Windows[0].X == r.Doors[0].X {
			t.Errorf("%s window shares the door edge", r.Type)
		}
	}
}

func TestSizeMultipliers(t *testing.T) {
	p := exampleProgram()
	p.MasterBedroomSize = plan.SizeBig
	p.BathroomSize = plan.SizeSmall
	doc, _ := Generate(p, VariantBase)
	for _, r := range doc.RoomsOnFloor(0) {
		switch r.Type {
		case plan.TypeMasterBedroom:
			if !near(r.H, 12*1.3) {
				t.Errorf("master bedroom length = %g, want %g", r.H, 12*1.3)
			}
		case plan.TypeMasterBath, plan.TypeBathroom:
			if !near(r.H, 6*0.8) {
				t.Errorf("%s length = %g, want %g", r.Type, r.H, 6*0.8)
			}
		}
	}
}

func TestMasterBathAttached(t *testing.T) {
	doc, _ := Generate(exampleProgram(), VariantBase)
	var bed, bath geom.Rect
	for _, r := range doc.RoomsOnFloor(0) {
		switch r.Type {
		case plan.TypeMasterBedroom:
			bed = r.Rect()
		case plan.TypeMasterBath:
			bath = r.Rect()
		}
	}
	if !near(bath.Y, bed.Bottom()) {
		t.Errorf("master bath starts at y=%g, want %g", bath.Y, bed.Bottom())
	}
}

func TestOverflowIsReported(t *testing.T) {
	p := exampleProgram()
	p.Depth = 30
	p.KidsBedrooms = 6
	doc, _ := Generate(p, VariantBase)
	var found bool
	for _, w := range plan.Validate(doc) {
		if w.Code == plan.WarnOutOfPlot {
			found = true
		}
	}
	if !found {
		t.Error("expected ROOM_OUT_OF_PLOT for an overflowing private wing")
	}
}

func TestSiteSides(t *testing.T) {
	tests := []struct {
		facing plan.Facing
		inside func(e plan.Extra, p plan.Program) bool
	}{
		{plan.North, func(e plan.Extra, p plan.Program) bool { return near(e.Y+e.H, 0) }},
		{plan.South, func(e plan.Extra, p plan.Program) bool { return near(e.Y, p.Depth) }},
		{plan.East, func(e plan.Extra, p plan.Program) bool { return near(e.X+e.W, 0) }},
		{plan.West, func(e plan.Extra, p plan.Program) bool { return near(e.X, p.Width) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.facing), func(t *testing.T) {
			p := exampleProgram()
			p.Facing = tt.facing
			p.Features.Garage = true
			doc, _ := Generate(p, VariantBase)
			var site []plan.Extra
			for _, e := range doc.Extras {
				if e.Type != plan.ExtraBalcony {
					site = append(site, e)
				}
			}
			if len(site) != 3 {
				t.Fatalf("site extras = %d, want 3", len(site))
			}
			for i, e := range site {
				if !tt.inside(e, p) {
					t.Errorf("%s at %+v not flush against the %s side", e.Type, e, tt.facing)
				}
				if e.Rect().Intersects(p.Plot().Rect()) {
					t.Errorf("%s overlaps the plot", e.Type)
				}
				for _, o := range site[i+1:] {
					if e.Rect().Intersects(o.Rect()) {
						t.Errorf("%s overlaps %s", e.Type, o.Type)
					}
				}
			}
		})
	}
}

func TestUnknownFacingSkipsSite(t *testing.T) {
	p := exampleProgram()
	p.Facing = "Up"
	doc, _ := Generate(p, VariantBase)
	for _, e := range doc.Extras {
		if e.Type != plan.ExtraBalcony {
			t.Errorf("unexpected site extra %s", e.Type)
		}
	}
}

func TestZeroFloors(t *testing.T) {
	p := exampleProgram()
	p.Floors = 0
	for _, doc := range Synthesize(p) {
		if len(doc.Rooms) != 0 || len(doc.Stairs) != 0 {
			t.Errorf("%s: rooms=%d stairs=%d, want none", doc.Variant, len(doc.Rooms), len(doc.Stairs))
		}
	}
}

func TestStairsInCorridor(t *testing.T) {
	p := exampleProgram()
	p.Floors = 3
	for _, doc := range Synthesize(p) {
		var corridors []geom.Rect
		for _, r := range doc.RoomsOnFloor(0) {
			if r.Type == plan.TypeCorridor {
				corridors = append(corridors, r.Rect())
			}
		}
		for _, s := range doc.Stairs {
			if s.ToFloor != s.FromFloor+1 {
				t.Errorf("%s: stair %d->%d", doc.Variant, s.FromFloor, s.ToFloor)
			}
			in := false
			for _, c := range corridors {
				if s.Rect().Within(c, 1e-9) {
					in = true
				}
			}
			if !in {
				t.Errorf("%s: stair %+v outside every corridor", doc.Variant, s)
			}
		}
	}
}

func TestLuxuryTwinSuites(t *testing.T) {
	p := exampleProgram()
	p.MasterBedrooms = 2
	p.Width = 80
	doc, _ := Generate(p, VariantLuxury)

	if doc.Floors != 1 {
		t.Errorf("floors = %d, want 1", doc.Floors)
	}
	if n := len(doc.RoomsOnFloor(1)); n != 0 {
		t.Errorf("rooms on floor 1 = %d, want 0", n)
	}
	if n := doc.CountByType(plan.TypeCorridor, 0); n != 2 {
		t.Errorf("corridors = %d, want 2", n)
	}
	if len(doc.Stairs) != 2 {
		t.Errorf("stairs = %d, want 2", len(doc.Stairs))
	}
	for _, s := range doc.Stairs {
		if s.FromFloor != 0 || s.ToFloor != 1 {
			t.Errorf("stair %d->%d, want 0->1", s.FromFloor, s.ToFloor)
		}
	}
	if n := doc.FloorCount(); n != 1 {
		t.Errorf("FloorCount = %d, want 1 (stairs do not add floors)", n)
	}
	for _, kind := range []string{plan.TypeLiving, plan.TypeDining, plan.TypeUtility, plan.TypeKitchen} {
		if doc.CountByType(kind, 0) != 1 {
			t.Errorf("%s count = %d, want 1", kind, doc.CountByType(kind, 0))
		}
	}

	var masters []geom.Rect
	for _, r := range doc.Rooms {
		if r.Type == plan.TypeMasterBedroom {
			masters = append(masters, r.Rect())
		}
	}
	if len(masters) != 2 {
		t.Fatalf("masters = %d, want 2", len(masters))
	}
	if !near(masters[0].X, 0) || !near(masters[1].Right(), p.Width) {
		t.Errorf("masters at x=%g and right=%g, want flanking the plot", masters[0].X, masters[1].Right())
	}
	if !near(masters[0].Y, masters[1].Y) {
		t.Errorf("twin suites at y=%g and y=%g, want mirrored", masters[0].Y, masters[1].Y)
	}
	if w := plan.Validate(doc); len(w) != 0 {
		t.Errorf("Validate = %v", w)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
