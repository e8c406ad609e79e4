// Package editor implements drag, resize and snap editing of plan rooms.
//
// An [Editor] is a two-state machine. Idle accepts [Editor.Begin], which
// captures the grabbed room and subscribes to the [PointerSource]. While
// dragging, pointer motion updates a preview rectangle and pointer release
// commits it to the document by room id. The pointer subscription is released
// on every exit path: commit, deletion of the dragged room, and Close.
//
// The editor never rejects overlapping rooms. Use [plan.Validate] on the
// document when disjointness matters.
package editor

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/palette"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

const (
	// DefaultScale is screen units per foot.
	DefaultScale = 10.0

	// SnapThreshold is the distance in feet within which an edge snaps.
	SnapThreshold = 0.5

	// MinSize is the smallest width or height a resize can produce.
	MinSize = 2.0
)

// Option configures an Editor.
type Option func(*Editor)

// WithScale sets the number of screen units per foot.
func WithScale(s float64) Option {
	return func(e *Editor) {
		if s > 0 {
			e.scale = s
		}
	}
}

// WithOnCommit registers a hook called with the committed room after every
// successful drag.
func WithOnCommit(fn func(plan.Room)) Option {
	return func(e *Editor) { e.onCommit = fn }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Editor edits the rooms of one document. It is not safe for concurrent use;
// callers serialize access per drag surface.
type Editor struct {
	doc      *plan.Document
	src      PointerSource
	scale    float64
	onCommit func(plan.Room)
	logger   *log.Logger

	session *session
}

type session struct {
	id      plan.RoomID
	handle  Handle
	start   geom.Point
	initial geom.Rect
	floor   int
	preview geom.Rect
	release func()
}

// New returns an Editor over doc. The editor mutates doc in place.
func New(doc *plan.Document, src PointerSource, opts ...Option) *Editor {
	e := &Editor{
		doc:    doc,
		src:    src,
		scale:  DefaultScale,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *plan.Document { return e.doc }

// Dragging reports whether a session is active.
func (e *Editor) Dragging() bool { return e.session != nil }

// Active returns the id of the room being dragged, if any.
func (e *Editor) Active() (plan.RoomID, bool) {
	if e.session == nil {
		return "", false
	}
	return e.session.id, true
}

// Preview returns the live candidate rectangle during a drag.
func (e *Editor) Preview() (geom.Rect, bool) {
	if e.session == nil {
		return geom.Rect{}, false
	}
	return e.session.preview, true
}

// Begin starts a drag of room id with handle h at screen point at.
func (e *Editor) Begin(id plan.RoomID, h Handle, at geom.Point) error {
	if e.session != nil {
		return errors.New(errors.ErrCodeSessionActive, "drag of room %s already in progress", e.session.id)
	}
	h, err := ParseHandle(string(h))
	if err != nil {
		return err
	}
	r, ok := e.doc.Room(id)
	if !ok {
		return errors.New(errors.ErrCodeRoomNotFound, "room %s not found", id)
	}

	s := &session{
		id:      id,
		handle:  h,
		start:   at,
		initial: r.Rect(),
		floor:   r.Floor,
		preview: r.Rect(),
	}
	e.session = s
	release := e.src.Subscribe(e.handlePointer)
	var once sync.Once
	s.release = func() { once.Do(release) }

	e.logger.Debug("drag started", "room", id, "type", r.Type, "handle", h)
	return nil
}

func (e *Editor) handlePointer(ev PointerEvent) {
	if e.session == nil {
		return
	}
	switch ev.Kind {
	case PointerMove:
		e.update(ev.At)
	case PointerUp:
		if _, err := e.End(ev.At); err != nil {
			e.logger.Warn("drag commit failed", "err", err)
		}
	}
}

// Move updates the preview for a pointer at screen point at.
func (e *Editor) Move(at geom.Point) error {
	if e.session == nil {
		return errors.New(errors.ErrCodeNoSession, "no drag in progress")
	}
	e.update(at)
	return nil
}

// End commits the drag at screen point at and returns the updated room.
func (e *Editor) End(at geom.Point) (plan.Room, error) {
	s := e.session
	if s == nil {
		return plan.Room{}, errors.New(errors.ErrCodeNoSession, "no drag in progress")
	}
	e.update(at)
	e.finish()

	if err := e.doc.UpdateRoom(s.id, s.preview); err != nil {
		return plan.Room{}, err
	}
	r, _ := e.doc.Room(s.id)
	e.logger.Debug("drag committed", "room", r.ID, "x", r.X, "y", r.Y, "w", r.W, "h", r.H)
	if e.onCommit != nil {
		e.onCommit(r)
	}
	return r, nil
}

// Cancel abandons the active drag without touching the document.
func (e *Editor) Cancel() {
	if e.session == nil {
		return
	}
	e.logger.Debug("drag cancelled", "room", e.session.id)
	e.finish()
}

// Close releases any pointer subscription and discards an uncommitted drag.
// It is safe to call more than once.
func (e *Editor) Close() {
	e.Cancel()
}

func (e *Editor) finish() {
	s := e.session
	e.session = nil
	s.release()
}

// Drop inserts a room from the palette with its top-left corner at screen
// point at on the given floor. The room gets a fresh id and no openings.
func (e *Editor) Drop(item palette.Item, at geom.Point, floor int) plan.Room {
	r := plan.Room{
		Type:  item.Type,
		X:     at.X / e.scale,
		Y:     at.Y / e.scale,
		W:     item.W,
		H:     item.H,
		Floor: floor,
	}
	r.ID = e.doc.AddRoom(r)
	r, _ = e.doc.Room(r.ID)
	e.logger.Debug("room dropped", "room", r.ID, "type", r.Type, "x", r.X, "y", r.Y, "floor", floor)
	return r
}

// Delete removes room id. A drag of that room is aborted first.
func (e *Editor) Delete(id plan.RoomID) error {
	if e.session != nil && e.session.id == id {
		e.Cancel()
	}
	return e.doc.RemoveRoom(id)
}

// update recomputes the preview for a pointer at screen point at.
func (e *Editor) update(at geom.Point) {
	s := e.session
	delta := at.Sub(s.start)
	d := geom.Point{X: delta.X / e.scale, Y: delta.Y / e.scale}
	xs, ys := e.snapLines(s)
	if s.handle == HandleMove {
		s.preview = moveRect(s.initial, d, xs, ys)
		return
	}
	s.preview = resizeRect(s.initial, s.handle, d, xs, ys)
}

// snapLines collects the vertical and horizontal edges the dragged room can
// snap to: the plot boundary and every other room on the same floor.
func (e *Editor) snapLines(s *session) (xs, ys []float64) {
	xs = []float64{0, e.doc.Plot.Width}
	ys = []float64{0, e.doc.Plot.Depth}
	for _, r := range e.doc.Rooms {
		if r.Floor != s.floor || r.ID == s.id {
			continue
		}
		xs = append(xs, r.X, r.X+r.W)
		ys = append(ys, r.Y, r.Y+r.H)
	}
	return xs, ys
}

// moveRect translates rc by d and snaps each axis. The leading (left or top)
// edge is tried first; the trailing edge only when the leading one misses.
func moveRect(rc geom.Rect, d geom.Point, xs, ys []float64) geom.Rect {
	out := rc
	out.X = snapSpan(rc.X+d.X, rc.W, xs)
	out.Y = snapSpan(rc.Y+d.Y, rc.H, ys)
	return out
}

func snapSpan(lo, size float64, lines []float64) float64 {
	if v, ok := geom.Snap(lo, lines, SnapThreshold); ok {
		return v
	}
	if v, ok := geom.Snap(lo+size, lines, SnapThreshold); ok {
		return v - size
	}
	return lo
}

// resizeRect moves the grabbed edges by d. East and south edges snap, then the
// size is held at MinSize or more. West and north edges snap, then stop at
// MinSize before the opposite edge.
func resizeRect(rc geom.Rect, h Handle, d geom.Point, xs, ys []float64) geom.Rect {
	out := rc
	if h.east() {
		right, _ := geom.Snap(rc.Right()+d.X, xs, SnapThreshold)
		out.W = math.Max(right-rc.X, MinSize)
	}
	if h.west() {
		left, _ := geom.Snap(rc.X+d.X, xs, SnapThreshold)
		left = math.Min(left, rc.Right()-MinSize)
		out.X, out.W = left, rc.Right()-left
	}
	if h.south() {
		bottom, _ := geom.Snap(rc.Bottom()+d.Y, ys, SnapThreshold)
		out.H = math.Max(bottom-rc.Y, MinSize)
	}
	if h.north() {
		top, _ := geom.Snap(rc.Y+d.Y, ys, SnapThreshold)
		top = math.Min(top, rc.Bottom()-MinSize)
		out.Y, out.H = top, rc.Bottom()-top
	}
	return out
}
