package editor

import (
	"strings"
	"sync"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
)

// Handle is the part of a room the user grabbed.
type Handle string

const (
	HandleMove Handle = "move"
	HandleN    Handle = "n"
	HandleS    Handle = "s"
	HandleE    Handle = "e"
	HandleW    Handle = "w"
	HandleNE   Handle = "ne"
	HandleNW   Handle = "nw"
	HandleSE   Handle = "se"
	HandleSW   Handle = "sw"
)

// ParseHandle parses a handle name case-insensitively.
func ParseHandle(s string) (Handle, error) {
	h := Handle(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HandleMove, HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW:
		return h, nil
	}
	return "", errors.New(errors.ErrCodeInvalidHandle,
		"invalid handle: %q (must be one of: move, n, s, e, w, ne, nw, se, sw)", s)
}

func (h Handle) north() bool { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) south() bool { return h == HandleS || h == HandleSE || h == HandleSW }
func (h Handle) east() bool  { return h == HandleE || h == HandleNE || h == HandleSE }
func (h Handle) west() bool  { return h == HandleW || h == HandleNW || h == HandleSW }

// PointerKind distinguishes pointer motion from release.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerUp
)

func (k PointerKind) String() string {
	if k == PointerUp {
		return "up"
	}
	return "move"
}

// PointerEvent is a pointer sample in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	At   geom.Point
}

// PointerFunc receives pointer events while subscribed.
type PointerFunc func(PointerEvent)

// PointerSource delivers pointer events to subscribers. The Editor subscribes
// once per drag session and calls release when the session ends for any
// reason. Sources must tolerate release being called from inside fn.
type PointerSource interface {
	Subscribe(fn PointerFunc) (release func())
}

// Dispatcher is a PointerSource fed by the caller. The terminal editor and the
// websocket handler translate their native input into Dispatch calls.
type Dispatcher struct {
	mu   sync.Mutex
	next int
	subs map[int]PointerFunc
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[int]PointerFunc)}
}

// Subscribe implements PointerSource. The returned release is idempotent.
func (d *Dispatcher) Subscribe(fn PointerFunc) func() {
	d.mu.Lock()
	id := d.next
	d.next++
	d.subs[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subs, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to every current subscriber.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	d.mu.Lock()
	fns := make([]PointerFunc, 0, len(d.subs))
	for _, fn := range d.subs {
		fns = append(fns, fn)
	}
	d.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Subscribers returns the number of live subscriptions.
func (d *Dispatcher) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}
