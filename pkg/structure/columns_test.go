package structure

import (
	"math"
	"testing"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

func TestGenerateColumnsSquareRoom(t *testing.T) {
	room := plan.Room{X: 0, Y: 0, W: 20, H: 20, Doors: []plan.Opening{{X: 10, Y: 0}}}
	cols := GenerateColumns(Options{Rooms: []plan.Room{room}, Spacing: 15})

	want := [][2]float64{{0, 0}, {15, 0}, {0, 15}, {15, 15}}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d: %+v", len(cols), len(want), cols)
	}
	for i, w := range want {
		if cols[i].X != w[0] || cols[i].Y != w[1] {
			t.Errorf("cols[%d] = (%g,%g), want (%g,%g)", i, cols[i].X, cols[i].Y, w[0], w[1])
		}
		if cols[i].Size != DefaultColumnSize || cols[i].Height != DefaultFloorHeight {
			t.Errorf("cols[%d] size=%g height=%g, want defaults", i, cols[i].Size, cols[i].Height)
		}
	}
}

func TestGenerateColumnsDoorExclusion(t *testing.T) {
	tests := []struct {
		name string
		door plan.Opening
		want int
	}{
		{"door far from grid", plan.Opening{X: 10, Y: 0}, 4},
		{"door on grid point", plan.Opening{X: 15, Y: 0}, 3},
		{"door just inside bay", plan.Opening{X: 16.9, Y: 1.9}, 3},
		{"door on bay edge", plan.Opening{X: 17, Y: 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := plan.Room{W: 20, H: 20, Doors: []plan.Opening{tt.door}}
			cols := GenerateColumns(Options{Rooms: []plan.Room{room}, Spacing: 15})
			if len(cols) != tt.want {
				t.Errorf("got %d columns, want %d", len(cols), tt.want)
			}
		})
	}
}

func TestGenerateColumnsDedup(t *testing.T) {
	rooms := []plan.Room{
		{X: 0, Y: 0, W: 15, H: 15},
		{X: 15, Y: 0, W: 15, H: 15},
	}
	cols := GenerateColumns(Options{Rooms: rooms, Spacing: 15})
	// Shared wall contributes (15,0) and (15,15) once.
	if len(cols) != 6 {
		t.Errorf("got %d columns, want 6", len(cols))
	}
	seen := make(map[[3]float64]bool)
	for _, c := range cols {
		k := [3]float64{c.X, c.Y, float64(c.Floor)}
		if seen[k] {
			t.Errorf("duplicate column %+v", c)
		}
		seen[k] = true
	}
}

func TestGenerateColumnsPerFloor(t *testing.T) {
	rooms := []plan.Room{
		{W: 10, H: 10, Floor: 0},
		{W: 10, H: 10, Floor: 1},
		{W: 10, H: 10, Floor: 2},
	}
	if got := len(GenerateColumns(Options{Rooms: rooms, Spacing: 15})); got != 3 {
		t.Errorf("derived floors: got %d columns, want 3", got)
	}
	if got := len(GenerateColumns(Options{Rooms: rooms, Spacing: 15, Floors: 2})); got != 2 {
		t.Errorf("Floors=2: got %d columns, want 2", got)
	}
}

func TestGenerateColumnsGridAlignment(t *testing.T) {
	p := plan.Program{
		Width: 43.7, Depth: 61.3, Floors: 2,
		MasterBedrooms: 1, KidsBedrooms: 2, GuestRooms: 1, Kitchens: 1, Bathrooms: 2,
		Facing: plan.North,
	}
	for _, spacing := range []float64{3, 7.5, 15} {
		for _, doc := range synth.Synthesize(p) {
			for _, c := range GenerateColumns(Options{Rooms: doc.Rooms, Spacing: spacing}) {
				for _, v := range []float64{c.X, c.Y} {
					k := v / spacing
					if math.Abs(k-math.Round(k)) > 1e-9 {
						t.Fatalf("%s spacing %g: column coordinate %g off grid", doc.Variant, spacing, v)
					}
				}
			}
		}
	}
}

func TestGenerateColumnsNoColumnInDoorBay(t *testing.T) {
	p := plan.Program{
		Width: 40, Depth: 60, Floors: 1,
		MasterBedrooms: 1, KidsBedrooms: 2, Kitchens: 1, Bathrooms: 1,
		Facing: plan.South,
	}
	doc, err := synth.Generate(p, synth.VariantBase)
	if err != nil {
		t.Fatal(err)
	}
	cols := GenerateColumns(Options{Rooms: doc.Rooms, Spacing: 5})
	for _, r := range doc.Rooms {
		for _, d := range r.DoorPoints() {
			for _, c := range cols {
				if c.Floor != r.Floor || !r.Rect().Contains(geom.Point{X: c.X, Y: c.Y}, Tolerance) {
					continue
				}
				if math.Abs(c.X-d.X) < DoorBay && math.Abs(c.Y-d.Y) < DoorBay {
					t.Errorf("column (%g,%g) blocks door of %s at (%g,%g)", c.X, c.Y, r.Type, d.X, d.Y)
				}
			}
		}
	}
}

func TestGenerateColumnsSkipsDegenerate(t *testing.T) {
	rooms := []plan.Room{{W: 0, H: 10}, {W: 10, H: -1}}
	if cols := GenerateColumns(Options{Rooms: rooms}); len(cols) != 0 {
		t.Errorf("got %d columns for degenerate rooms, want 0", len(cols))
	}
}
