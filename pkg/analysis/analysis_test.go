package analysis

import (
	"reflect"
	"testing"

	"github.com/matzehuels/floorsmith/pkg/plan"
)

var plot = plan.Plot{Width: 40, Depth: 60}

func TestSunExposure(t *testing.T) {
	tests := []struct {
		name string
		room plan.Room
		want []Direction
	}{
		{"interior", plan.Room{X: 10, Y: 10, W: 5, H: 5}, nil},
		{"north-west corner", plan.Room{X: 0, Y: 0, W: 10, H: 10}, []Direction{North, West}},
		{"south edge", plan.Room{X: 10, Y: 50, W: 10, H: 10}, []Direction{South}},
		{"full width", plan.Room{X: 0, Y: 20, W: 40, H: 10}, []Direction{West, East}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SunExposure(tt.room, plot); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SunExposure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeRoom(t *testing.T) {
	r := plan.Room{
		X: 0, Y: 50, W: 10, H: 10,
		Windows: []plan.Opening{{X: 0, Y: 5}, {X: 10, Y: 5}},
	}
	a := AnalyzeRoom(r, plot)
	if a.SunlightScore != 3+2 {
		t.Errorf("SunlightScore = %d, want 5", a.SunlightScore)
	}
	if !a.CrossVentilation {
		t.Error("windows on west and east walls should cross-ventilate")
	}

	r.Windows = []plan.Opening{{X: 0, Y: 5}, {X: 5, Y: 0}}
	if AnalyzeRoom(r, plot).CrossVentilation {
		t.Error("adjacent walls should not cross-ventilate")
	}
}

func TestScoreDocument(t *testing.T) {
	doc := plan.NewDocument("test", plot, 1)
	// South edge with cross-ventilation: 3 + 2 of a possible 5.
	doc.AddRoom(plan.Room{X: 10, Y: 50, W: 10, H: 10, Windows: []plan.Opening{{X: 5, Y: 0}, {X: 5, Y: 10}}})
	// Interior, no windows: 0 of 5.
	doc.AddRoom(plan.Room{X: 10, Y: 20, W: 10, H: 10})

	s := ScoreDocument(doc)
	if s.Raw != 5 || s.Max != 10 {
		t.Errorf("raw=%d max=%d, want 5/10", s.Raw, s.Max)
	}
	if s.Normalized != 50 || s.Grade != "C" {
		t.Errorf("normalized=%d grade=%s, want 50 C", s.Normalized, s.Grade)
	}
	if len(s.Rooms) != 2 {
		t.Errorf("rooms = %d, want 2", len(s.Rooms))
	}
}

func TestScoreCapped(t *testing.T) {
	doc := plan.NewDocument("test", plan.Plot{Width: 10, Depth: 10}, 1)
	doc.AddRoom(plan.Room{W: 10, H: 10, Windows: []plan.Opening{{X: 0, Y: 5}, {X: 10, Y: 5}}})
	if s := ScoreDocument(doc); s.Normalized != 100 || s.Grade != "A" {
		t.Errorf("normalized=%d grade=%s, want 100 A", s.Normalized, s.Grade)
	}
}

func TestScoreEmpty(t *testing.T) {
	s := ScoreDocument(plan.NewDocument("test", plot, 0))
	if s.Normalized != 0 || s.Grade != "D" {
		t.Errorf("empty document = %+v", s)
	}
}

func TestGrade(t *testing.T) {
	for n, want := range map[int]string{100: "A", 80: "A", 79: "B", 60: "B", 40: "C", 39: "D", 0: "D"} {
		if got := Grade(n); got != want {
			t.Errorf("Grade(%d) = %s, want %s", n, got, want)
		}
	}
}
