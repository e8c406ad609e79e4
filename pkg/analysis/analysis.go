// Package analysis scores a floor plan for daylight and cross-ventilation.
//
// Plot edges map to compass directions with north at y = 0: the y = depth
// edge is south, x = 0 is west and x = width is east. A room earns sunlight
// points for every plot edge it touches and a ventilation bonus when it has
// windows on two opposite walls.
package analysis

import (
	"math"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Direction is a compass side of the plot or of a room.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// SunPriority weights the daylight a side receives.
var SunPriority = map[Direction]int{North: 1, East: 2, West: 2, South: 3}

const (
	// VentilationBonus is added for windows on two opposite walls.
	VentilationBonus = 2

	maxSunPerRoom = 3
	edgeTolerance = 1e-6
)

// RoomAnalysis is the environmental summary of one room.
type RoomAnalysis struct {
	ID               plan.RoomID `json:"id"`
	Type             string      `json:"type"`
	Floor            int         `json:"floor"`
	SunSides         []Direction `json:"sunSides"`
	SunlightScore    int         `json:"sunlightScore"`
	WindowSides      []Direction `json:"windowSides"`
	CrossVentilation bool        `json:"crossVentilation"`
}

// Score is the layout-level result.
type Score struct {
	Raw        int            `json:"raw"`
	Max        int            `json:"max"`
	Normalized int            `json:"normalized"`
	Grade      string         `json:"grade"`
	Rooms      []RoomAnalysis `json:"rooms,omitempty"`
}

// SunExposure returns the plot edges room r touches, in N, S, W, E order.
func SunExposure(r plan.Room, p plan.Plot) []Direction {
	var out []Direction
	if near(r.Y, 0) {
		out = append(out, North)
	}
	if near(r.Y+r.H, p.Depth) {
		out = append(out, South)
	}
	if near(r.X, 0) {
		out = append(out, West)
	}
	if near(r.X+r.W, p.Width) {
		out = append(out, East)
	}
	return out
}

// WindowSides returns the room walls that carry at least one window.
func WindowSides(r plan.Room) []Direction {
	has := make(map[Direction]bool)
	for _, w := range r.Windows {
		if near(w.Y, 0) {
			has[North] = true
		}
		if near(w.Y, r.H) {
			has[South] = true
		}
		if near(w.X, 0) {
			has[West] = true
		}
		if near(w.X, r.W) {
			has[East] = true
		}
	}
	var out []Direction
	for _, d := range []Direction{North, South, West, East} {
		if has[d] {
			out = append(out, d)
		}
	}
	return out
}

// AnalyzeRoom computes the sun and ventilation summary of r.
func AnalyzeRoom(r plan.Room, p plan.Plot) RoomAnalysis {
	sun := SunExposure(r, p)
	score := 0
	for _, d := range sun {
		score += SunPriority[d]
	}
	sides := WindowSides(r)
	return RoomAnalysis{
		ID:               r.ID,
		Type:             r.Type,
		Floor:            r.Floor,
		SunSides:         sun,
		SunlightScore:    score,
		WindowSides:      sides,
		CrossVentilation: crossVentilated(sides),
	}
}

func crossVentilated(sides []Direction) bool {
	has := make(map[Direction]bool, len(sides))
	for _, d := range sides {
		has[d] = true
	}
	return (has[North] && has[South]) || (has[East] && has[West])
}

// ScoreDocument scores every room in doc. Each room can contribute up to
// three sunlight points and the ventilation bonus toward the maximum; corner
// rooms can exceed it, so the normalized score is capped at 100.
func ScoreDocument(doc *plan.Document) Score {
	var s Score
	for _, r := range doc.Rooms {
		a := AnalyzeRoom(r, doc.Plot)
		s.Raw += a.SunlightScore
		if a.CrossVentilation {
			s.Raw += VentilationBonus
		}
		s.Max += maxSunPerRoom + VentilationBonus
		s.Rooms = append(s.Rooms, a)
	}
	if s.Max > 0 {
		s.Normalized = int(math.Round(float64(s.Raw) / float64(s.Max) * 100))
		s.Normalized = int(geom.Clamp(float64(s.Normalized), 0, 100))
	}
	s.Grade = Grade(s.Normalized)
	return s
}

// Grade maps a normalized score to A (>= 80), B (>= 60), C (>= 40) or D.
func Grade(n int) string {
	switch {
	case n >= 80:
		return "A"
	case n >= 60:
		return "B"
	case n >= 40:
		return "C"
	default:
		return "D"
	}
}

func near(a, b float64) bool { return math.Abs(a-b) <= edgeTolerance }
