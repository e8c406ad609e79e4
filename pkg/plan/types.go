package plan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/floorsmith/pkg/geom"
)

// Room types emitted by the synthesizer.
const (
	TypeCorridor      = "corridor"
	TypeLiving        = "living"
	TypeDining        = "dining"
	TypeUtility       = "utility"
	TypeKitchen       = "kitchen"
	TypeOffice        = "office"
	TypeMasterBedroom = "master bedroom"
	TypeMasterBath    = "master bath"
	TypeKidsBedroom   = "kids bedroom"
	TypeGuestRoom     = "guest room"
	TypeBathroom      = "bathroom"
)

// Extra types.
const (
	ExtraGarden  = "garden"
	ExtraParking = "parking"
	ExtraGarage  = "garage"
	ExtraBalcony = "balcony"
)

// Plot is the buildable rectangle, anchored at the origin.
type Plot struct {
	Width float64 `json:"width" bson:"width"`
	Depth float64 `json:"depth" bson:"depth"`
}

// Rect returns the plot as a rectangle at the origin.
func (p Plot) Rect() geom.Rect { return geom.Rect{W: p.Width, H: p.Depth} }

// RoomID is a stable opaque identifier. Mutations address rooms by id, never
// by their position in Document.Rooms.
type RoomID string

// roomNamespace scopes the name-based ids of synthesized rooms.
var roomNamespace = uuid.MustParse("6f1c2a9e-3b7d-5c1e-9a40-2d8f6b0e4c11")

// NewRoomID returns a fresh random id for rooms created interactively.
func NewRoomID() RoomID {
	return RoomID(uuid.NewString())
}

// DerivedRoomID returns a name-based id so that synthesizing the same program
// twice yields identical ids.
func DerivedRoomID(parts ...string) RoomID {
	name := strings.Join(parts, "/")
	return RoomID(uuid.NewSHA1(roomNamespace, []byte(name)).String())
}

// Opening is a door or window position relative to the room's origin.
type Opening struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Room is a rectangular interior space on one floor.
type Room struct {
	ID      RoomID    `json:"id" bson:"id"`
	Type    string    `json:"type" bson:"type"`
	X       float64   `json:"x" bson:"x"`
	Y       float64   `json:"y" bson:"y"`
	W       float64   `json:"w" bson:"w"`
	H       float64   `json:"h" bson:"h"`
	Floor   int       `json:"floor" bson:"floor"`
	Doors   []Opening `json:"doors" bson:"doors"`
	Windows []Opening `json:"windows" bson:"windows"`
}

// Rect returns the room's footprint.
func (r Room) Rect() geom.Rect { return geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// SetRect replaces the room's footprint, leaving openings untouched.
func (r *Room) SetRect(rc geom.Rect) {
	r.X, r.Y, r.W, r.H = rc.X, rc.Y, rc.W, rc.H
}

// DoorPoints returns the doors in absolute plot coordinates.
func (r Room) DoorPoints() []geom.Point {
	pts := make([]geom.Point, len(r.Doors))
	for i, d := range r.Doors {
		pts[i] = geom.Point{X: r.X + d.X, Y: r.Y + d.Y}
	}
	return pts
}

func (r Room) clone() Room {
	c := r
	c.Doors = append([]Opening{}, r.Doors...)
	c.Windows = append([]Opening{}, r.Windows...)
	return c
}

// Stair connects FromFloor to ToFloor (always FromFloor+1).
type Stair struct {
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
	W         float64 `json:"w" bson:"w"`
	H         float64 `json:"h" bson:"h"`
	FromFloor int     `json:"fromFloor" bson:"from_floor"`
	ToFloor   int     `json:"toFloor" bson:"to_floor"`
}

// Rect returns the stair's footprint.
func (s Stair) Rect() geom.Rect { return geom.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H} }

// Extra is an exterior or attached element: garden, parking, garage or balcony.
type Extra struct {
	Type  string  `json:"type" bson:"type"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	W     float64 `json:"w" bson:"w"`
	H     float64 `json:"h" bson:"h"`
	Floor int     `json:"floor" bson:"floor"`
}

// Rect returns the extra's footprint.
func (e Extra) Rect() geom.Rect { return geom.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H} }

// Column is a structural grid point.
type Column struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Floor  int     `json:"floor" bson:"floor"`
	Size   float64 `json:"size" bson:"size"`
	Height float64 `json:"height" bson:"height"`
}
