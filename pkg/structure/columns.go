// Package structure overlays a structural column grid onto a floor plan.
//
// Columns sit on a global grid of the given spacing anchored at the plot
// origin. Each room contributes the grid points inside its footprint, minus
// points in front of a door. Points shared by adjacent rooms are emitted once
// per floor.
package structure

import (
	"math"
	"sort"
	"strconv"

	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Defaults applied to zero-valued Options fields.
const (
	DefaultFloorHeight = 10.0
	DefaultSpacing     = 15.0
	DefaultColumnSize  = 1.0
)

const (
	// Tolerance admits grid points that lie on a room edge despite float error.
	Tolerance = 0.1

	// DoorBay is the half-width, on each axis, of the column-free square
	// centred on a door.
	DoorBay = 2.0
)

// Options configures GenerateColumns.
type Options struct {
	Rooms       []plan.Room
	Floors      int     // <= 0: one past the highest room floor
	FloorHeight float64 // column height; <= 0 uses DefaultFloorHeight
	Spacing     float64 // grid pitch in feet; <= 0 uses DefaultSpacing
	ColumnSize  float64 // square side in feet; <= 0 uses DefaultColumnSize
}

func (o Options) withDefaults() Options {
	if o.FloorHeight <= 0 {
		o.FloorHeight = DefaultFloorHeight
	}
	if o.Spacing <= 0 {
		o.Spacing = DefaultSpacing
	}
	if o.ColumnSize <= 0 {
		o.ColumnSize = DefaultColumnSize
	}
	if o.Floors <= 0 {
		for _, r := range o.Rooms {
			if r.Floor+1 > o.Floors {
				o.Floors = r.Floor + 1
			}
		}
	}
	return o
}

// GenerateColumns returns grid columns for every room on floors [0, Floors).
//
// For each room the grid is walked from the nearest grid line at or before the
// room's origin to its far edge. Candidates are computed as index*spacing, not
// by repeated addition, so they stay exactly on the grid. A candidate is kept
// when it lies inside the room and is not within DoorBay of any of the room's
// doors on both axes. The result is ordered by floor, then y, then x.
func GenerateColumns(opts Options) []plan.Column {
	opts = opts.withDefaults()
	sp := opts.Spacing

	seen := make(map[string]bool)
	var out []plan.Column
	for _, r := range opts.Rooms {
		if r.Floor < 0 || r.Floor >= opts.Floors || r.W <= 0 || r.H <= 0 {
			continue
		}
		rc := r.Rect()
		doors := r.DoorPoints()

		i0 := math.Floor(r.X / sp)
		j0 := math.Floor(r.Y / sp)
		for j := j0; j*sp <= rc.Bottom()+Tolerance; j++ {
			y := j * sp
			for i := i0; i*sp <= rc.Right()+Tolerance; i++ {
				x := i * sp
				if x < rc.X-Tolerance || y < rc.Y-Tolerance {
					continue
				}
				if blocksDoor(x, y, doors) {
					continue
				}
				key := strconv.FormatFloat(x, 'f', -1, 64) + "," +
					strconv.FormatFloat(y, 'f', -1, 64) + "," + strconv.Itoa(r.Floor)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, plan.Column{
					X:      x,
					Y:      y,
					Floor:  r.Floor,
					Size:   opts.ColumnSize,
					Height: opts.FloorHeight,
				})
			}
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Floor != out[b].Floor {
			return out[a].Floor < out[b].Floor
		}
		if out[a].Y != out[b].Y {
			return out[a].Y < out[b].Y
		}
		return out[a].X < out[b].X
	})
	return out
}

func blocksDoor(x, y float64, doors []geom.Point) bool {
	for _, d := range doors {
		if math.Abs(x-d.X) < DoorBay && math.Abs(y-d.Y) < DoorBay {
			return true
		}
	}
	return false
}
