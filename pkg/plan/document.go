package plan

import (
	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
)

// Document is the floor plan produced by synthesis and mutated by the editor.
//
// Rooms are stored in emission order for serialization, but every mutation
// goes through a RoomID. The id index is rebuilt lazily, so a Document decoded
// from JSON or BSON is usable without further setup.
type Document struct {
	Variant string  `json:"variant" bson:"variant"`
	Plot    Plot    `json:"plot" bson:"plot"`
	Floors  int     `json:"floors" bson:"floors"`
	Rooms   []Room  `json:"rooms" bson:"rooms"`
	Stairs  []Stair `json:"stairs" bson:"stairs"`
	Extras  []Extra `json:"extras" bson:"extras"`

	index map[RoomID]int
}

// NewDocument returns an empty document for the given plot.
func NewDocument(variant string, plot Plot, floors int) *Document {
	return &Document{
		Variant: variant,
		Plot:    plot,
		Floors:  floors,
		Rooms:   []Room{},
		Stairs:  []Stair{},
		Extras:  []Extra{},
	}
}

// Normalize gives every room with an empty or repeated id a fresh one and
// rebuilds the id index. Decoders call it so that hand-written documents can
// be edited by id.
func (d *Document) Normalize() {
	d.index = nil
	d.ensureIndex()
}

func (d *Document) ensureIndex() {
	if d.index != nil && len(d.index) == len(d.Rooms) {
		return
	}
	d.index = make(map[RoomID]int, len(d.Rooms))
	for i := range d.Rooms {
		id := d.Rooms[i].ID
		if _, dup := d.index[id]; id == "" || dup {
			id = NewRoomID()
			d.Rooms[i].ID = id
		}
		d.index[id] = i
	}
}

// Room returns a copy of the room with the given id.
func (d *Document) Room(id RoomID) (Room, bool) {
	d.ensureIndex()
	i, ok := d.index[id]
	if !ok {
		return Room{}, false
	}
	return d.Rooms[i], true
}

// AddRoom appends r, assigning a fresh id when r has none.
// It returns the id the room is stored under.
func (d *Document) AddRoom(r Room) RoomID {
	if r.ID == "" {
		r.ID = NewRoomID()
	}
	if r.Doors == nil {
		r.Doors = []Opening{}
	}
	if r.Windows == nil {
		r.Windows = []Opening{}
	}
	d.ensureIndex()
	d.Rooms = append(d.Rooms, r)
	d.index[r.ID] = len(d.Rooms) - 1
	return r.ID
}

// UpdateRoom replaces the footprint of the room with the given id.
func (d *Document) UpdateRoom(id RoomID, rc geom.Rect) error {
	d.ensureIndex()
	i, ok := d.index[id]
	if !ok {
		return errors.New(errors.ErrCodeRoomNotFound, "room %s not found", id)
	}
	d.Rooms[i].SetRect(rc)
	return nil
}

// RemoveRoom deletes the room with the given id.
func (d *Document) RemoveRoom(id RoomID) error {
	d.ensureIndex()
	i, ok := d.index[id]
	if !ok {
		return errors.New(errors.ErrCodeRoomNotFound, "room %s not found", id)
	}
	d.Rooms = append(d.Rooms[:i], d.Rooms[i+1:]...)
	d.index = nil
	return nil
}

// RoomsOnFloor returns copies of the rooms on floor f in document order.
func (d *Document) RoomsOnFloor(f int) []Room {
	var out []Room
	for _, r := range d.Rooms {
		if r.Floor == f {
			out = append(out, r)
		}
	}
	return out
}

// CountByType returns how many rooms of type kind sit on floor f.
// A negative floor counts across all floors.
func (d *Document) CountByType(kind string, f int) int {
	n := 0
	for _, r := range d.Rooms {
		if r.Type == kind && (f < 0 || r.Floor == f) {
			n++
		}
	}
	return n
}

// FloorCount returns the number of floors the document spans: the declared
// floor count or one past the highest occupied floor, whichever is larger.
// Stair endpoints are not counted.
func (d *Document) FloorCount() int {
	n := d.Floors
	for _, r := range d.Rooms {
		if r.Floor+1 > n {
			n = r.Floor + 1
		}
	}
	return n
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{
		Variant: d.Variant,
		Plot:    d.Plot,
		Floors:  d.Floors,
		Rooms:   make([]Room, len(d.Rooms)),
		Stairs:  append([]Stair{}, d.Stairs...),
		Extras:  append([]Extra{}, d.Extras...),
	}
	for i, r := range d.Rooms {
		c.Rooms[i] = r.clone()
	}
	return c
}
