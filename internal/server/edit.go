package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/matzehuels/floorsmith/pkg/editor"
	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/observability"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

const (
	editWriteWait = 10 * time.Second
	editPongWait  = 60 * time.Second
	editPingEvery = (editPongWait * 9) / 10
)

var editUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// editInbound is a pointer message from the client. X and Y are screen
// units, editor.DefaultScale per foot.
type editInbound struct {
	Kind   string  `json:"kind"`
	Room   string  `json:"room,omitempty"`
	Handle string  `json:"handle,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// editOutbound is a message to the client.
type editOutbound struct {
	Type    string      `json:"type"`
	Room    string      `json:"room,omitempty"`
	Rect    *geom.Rect  `json:"rect,omitempty"`
	Code    errors.Code `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// newEditor returns an editor over doc that logs through the server logger.
func (s *Server) newEditor(doc *plan.Document, src editor.PointerSource, opts ...editor.Option) *editor.Editor {
	opts = append([]editor.Option{editor.WithLogger(s.logger)}, opts...)
	return editor.New(doc, src, opts...)
}

// floorPoint converts plot feet to editor screen units.
func floorPoint(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}.Scale(editor.DefaultScale)
}

// handleEdit streams pointer events for one project into an Editor. Each
// connection owns its editor; commits are written back to the store. Closing
// the connection releases any active drag.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := editUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(editPongWait)); err != nil {
		s.logger.Warn("edit ws set read deadline failed", "err", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(editPongWait))
	})

	writeCh := make(chan editOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(editPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(editWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(editWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	disp := editor.NewDispatcher()
	var committed bool
	ed := s.newEditor(p.Document, disp, editor.WithOnCommit(func(room plan.Room) {
		committed = true
		rc := room.Rect()
		if err := s.commitRoom(ctx, id, room); err != nil {
			pushEdit(writeCh, errorMessage(err))
			return
		}
		pushEdit(writeCh, editOutbound{Type: "commit", Room: string(room.ID), Rect: &rc})
	}))
	defer ed.Close()

	s.logger.Debug("edit session opened", "project", id)
	pushEdit(writeCh, editOutbound{Type: "ready"})

	for {
		var in editInbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("edit ws read failed", "project", id, "err", err)
			}
			cancel()
			<-writerDone
			s.logger.Debug("edit session closed", "project", id, "dragging", ed.Dragging())
			return
		}
		at := geom.Point{X: in.X, Y: in.Y}

		switch strings.ToLower(strings.TrimSpace(in.Kind)) {
		case "down":
			h, err := editor.ParseHandle(in.Handle)
			if err != nil {
				pushEdit(writeCh, errorMessage(err))
				continue
			}
			if err := ed.Begin(plan.RoomID(in.Room), h, at); err != nil {
				pushEdit(writeCh, errorMessage(err))
				continue
			}
			observability.Edit().OnDragBegin(ctx, in.Room, string(h))
			pushEdit(writeCh, previewMessage(ed))
		case "move":
			if !ed.Dragging() {
				pushEdit(writeCh, errorMessage(errors.New(errors.ErrCodeNoSession, "no drag in progress")))
				continue
			}
			disp.Dispatch(editor.PointerEvent{Kind: editor.PointerMove, At: at})
			pushEdit(writeCh, previewMessage(ed))
		case "up":
			if !ed.Dragging() {
				pushEdit(writeCh, errorMessage(errors.New(errors.ErrCodeNoSession, "no drag in progress")))
				continue
			}
			room, _ := ed.Active()
			committed = false
			disp.Dispatch(editor.PointerEvent{Kind: editor.PointerUp, At: at})
			observability.Edit().OnDragEnd(ctx, string(room), committed)
		case "cancel":
			if room, ok := ed.Active(); ok {
				observability.Edit().OnDragEnd(ctx, string(room), false)
			}
			ed.Cancel()
		case "ping":
			pushEdit(writeCh, editOutbound{Type: "pong"})
		default:
			pushEdit(writeCh, errorMessage(errors.New(errors.ErrCodeInvalidInput,
				"invalid kind: %q (must be one of: down, move, up, cancel, ping)", in.Kind)))
		}
	}
}

// commitRoom writes a committed drag to the stored project. The stored
// document is reloaded so edits from other connections are kept.
func (s *Server) commitRoom(ctx context.Context, id string, room plan.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.Document.UpdateRoom(room.ID, room.Rect()); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func previewMessage(ed *editor.Editor) editOutbound {
	rc, _ := ed.Preview()
	id, _ := ed.Active()
	return editOutbound{Type: "preview", Room: string(id), Rect: &rc}
}

func errorMessage(err error) editOutbound {
	return editOutbound{Type: "error", Code: errors.GetCode(err), Message: errors.UserMessage(err)}
}

// pushEdit queues out without blocking the read loop. When the queue is
// full the oldest message is dropped.
func pushEdit(ch chan editOutbound, out editOutbound) {
	select {
	case ch <- out:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- out:
	default:
	}
}
