package plan

import (
	"fmt"
	"sort"

	"github.com/matzehuels/floorsmith/pkg/geom"
)

// WarningCode identifies a class of layout warning.
type WarningCode string

const (
	WarnOutOfPlot     WarningCode = "ROOM_OUT_OF_PLOT"
	WarnOverlap       WarningCode = "ROOM_OVERLAP"
	WarnDegenerate    WarningCode = "ROOM_DEGENERATE"
	WarnProgramPlot   WarningCode = "PROGRAM_PLOT"
	WarnProgramFloors WarningCode = "PROGRAM_FLOORS"
	WarnProgramCount  WarningCode = "PROGRAM_COUNT"
	WarnProgramFacing WarningCode = "PROGRAM_FACING"
)

// Warning is a validation result. Warnings describe geometry the engine
// produced as asked but which a caller may want to reject.
type Warning struct {
	Code    WarningCode `json:"code" bson:"code"`
	Message string      `json:"message" bson:"message"`
	Floor   int         `json:"floor" bson:"floor"` // -1 when not floor specific
	RoomIDs []RoomID    `json:"roomIds,omitempty" bson:"room_ids,omitempty"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// outOfPlotTolerance absorbs float error from fractional wing sizes.
const outOfPlotTolerance = 1e-3

// Validate reports rooms that leave the plot, overlap a sibling on the same
// floor, or have no positive extent. It never modifies the document.
//
// Rooms are compared pairwise per floor; output is sorted by floor, then code,
// so that the same document always yields the same warning list.
func Validate(d *Document) []Warning {
	var out []Warning
	plot := d.Plot.Rect()

	byFloor := make(map[int][]Room)
	for _, r := range d.Rooms {
		byFloor[r.Floor] = append(byFloor[r.Floor], r)

		rc := r.Rect()
		if rc.Empty() {
			out = append(out, Warning{
				Code:    WarnDegenerate,
				Floor:   r.Floor,
				RoomIDs: []RoomID{r.ID},
				Message: fmt.Sprintf("%s has non-positive size %gx%g", r.Type, r.W, r.H),
			})
			continue
		}
		if !plot.Empty() && !rc.Within(plot, outOfPlotTolerance) {
			out = append(out, Warning{
				Code:    WarnOutOfPlot,
				Floor:   r.Floor,
				RoomIDs: []RoomID{r.ID},
				Message: fmt.Sprintf("%s at (%g,%g) %gx%g extends past the %gx%g plot",
					r.Type, r.X, r.Y, r.W, r.H, d.Plot.Width, d.Plot.Depth),
			})
		}
	}

	for floor, rooms := range byFloor {
		for i := 0; i < len(rooms); i++ {
			a := rooms[i].Rect()
			if a.Empty() {
				continue
			}
			for j := i + 1; j < len(rooms); j++ {
				b := rooms[j].Rect()
				if b.Empty() || !a.Intersects(b) {
					continue
				}
				out = append(out, Warning{
					Code:    WarnOverlap,
					Floor:   floor,
					RoomIDs: []RoomID{rooms[i].ID, rooms[j].ID},
					Message: fmt.Sprintf("%s and %s overlap by %.2f sq ft",
						rooms[i].Type, rooms[j].Type, a.IntersectionArea(b)),
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Floor != out[j].Floor {
			return out[i].Floor < out[j].Floor
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Overlaps reports whether rc overlaps any room on floor f other than skip.
func (d *Document) Overlaps(rc geom.Rect, floor int, skip RoomID) bool {
	for _, r := range d.Rooms {
		if r.Floor != floor || r.ID == skip {
			continue
		}
		if rc.Intersects(r.Rect()) {
			return true
		}
	}
	return false
}
