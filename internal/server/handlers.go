package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/editor"
	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/palette"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/store"
	"github.com/matzehuels/floorsmith/pkg/structure"
)

// =============================================================================
// Stateless endpoints
// =============================================================================

// planRequest is the body of POST /v1/plans.
type planRequest struct {
	Program     plan.Program `json:"program"`
	Variant     string       `json:"variant"`
	Columns     bool         `json:"columns"`
	Spacing     float64      `json:"spacing"`
	FloorHeight float64      `json:"floorHeight"`
	ColumnSize  float64      `json:"columnSize"`
}

// planResponse is a synthesized plan with its analysis.
type planResponse struct {
	Document *plan.Document `json:"document"`
	Columns  []plan.Column  `json:"columns,omitempty"`
	Warnings []plan.Warning `json:"warnings"`
	Score    analysis.Score `json:"score"`
	Cached   bool           `json:"cached"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Program:     req.Program,
		Variant:     req.Variant,
		Columns:     req.Columns,
		Spacing:     req.Spacing,
		FloorHeight: req.FloorHeight,
		ColumnSize:  req.ColumnSize,
		Formats:     []string{pipeline.FormatJSON},
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []plan.Warning{}
	}
	writeJSON(w, http.StatusOK, planResponse{
		Document: result.Document,
		Columns:  result.Columns,
		Warnings: warnings,
		Score:    result.Score,
		Cached:   result.CacheInfo.PlanHit,
	})
}

// variantsRequest is the body of POST /v1/plans/variants.
type variantsRequest struct {
	Program plan.Program `json:"program"`
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	var req variantsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := req.Program.Normalize()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	docs, err := s.runner.Variants(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// columnsRequest is the body of POST /v1/columns.
type columnsRequest struct {
	Rooms       []plan.Room `json:"rooms"`
	Floors      int         `json:"floors"`
	FloorHeight float64     `json:"floorHeight"`
	Spacing     float64     `json:"spacing"`
	ColumnSize  float64     `json:"columnSize"`
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	var req columnsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	cols := structure.GenerateColumns(structure.Options{
		Rooms:       req.Rooms,
		Floors:      req.Floors,
		FloorHeight: req.FloorHeight,
		Spacing:     req.Spacing,
		ColumnSize:  req.ColumnSize,
	})
	if cols == nil {
		cols = []plan.Column{}
	}
	writeJSON(w, http.StatusOK, cols)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, palette.Items())
}

// =============================================================================
// Projects
// =============================================================================

// createProjectRequest is the body of POST /v1/projects.
type createProjectRequest struct {
	Name    string       `json:"name"`
	Program plan.Program `json:"program"`
	Variant string       `json:"variant"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{Program: req.Program, Variant: req.Variant}
	if err := opts.ValidateForSynth(); err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.runner.Synthesize(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p := &store.Project{
		Name:     req.Name,
		Variant:  doc.Variant,
		Program:  opts.Program,
		Document: doc,
	}
	if err := s.store.Create(r.Context(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("project created", "id", p.ID, "name", p.Name, "variant", p.Variant, "rooms", len(doc.Rooms))
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ps, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ps == nil {
		ps = []*store.Project{}
	}
	writeJSON(w, http.StatusOK, ps)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("project deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProjectSVG(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
	if raw := r.URL.Query().Get("floor"); raw != "" {
		f, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "floor must be an integer, got %q", raw))
			return
		}
		opts.Floor = f
	}
	if theme := r.URL.Query().Get("theme"); theme != "" {
		opts.Theme = theme
	}
	var cols []plan.Column
	if r.URL.Query().Get("columns") == "true" {
		if cols, err = s.runner.Columns(r.Context(), p.Document, opts); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	artifacts, err := s.runner.Render(r.Context(), p.Document, cols, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// dropRequest is the body of POST /v1/projects/{id}/rooms. X and Y are plot
// feet of the room's top-left corner.
type dropRequest struct {
	Item  string  `json:"item"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Floor int     `json:"floor"`
}

func (s *Server) handleDropRoom(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	item, err := palette.Lookup(req.Item)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", errors.UserMessage(err)))
		return
	}
	if req.Floor < 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "floor must not be negative, got %d", req.Floor))
		return
	}

	var room plan.Room
	err = s.updateProject(r, chi.URLParam(r, "id"), func(p *store.Project) error {
		room = s.newEditor(p.Document, editor.NewDispatcher()).Drop(item, floorPoint(req.X, req.Y), req.Floor)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := plan.RoomID(chi.URLParam(r, "roomID"))
	err := s.updateProject(r, chi.URLParam(r, "id"), func(p *store.Project) error {
		return s.newEditor(p.Document, editor.NewDispatcher()).Delete(roomID)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateProject loads project id, applies fn and saves the result while
// holding the server's project lock.
func (s *Server) updateProject(r *http.Request, id string, fn func(*store.Project) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return s.store.Save(r.Context(), p)
}
