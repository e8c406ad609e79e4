// Package store persists named projects: a room program, the chosen variant
// and the (possibly hand-edited) floor plan document.
//
// Three backends implement [Store]:
//
//   - [MemoryStore]: process-local map, the default for tests and a single
//     server instance without persistence.
//   - [SQLiteStore]: a single file, suitable for the CLI and small servers.
//   - [MongoStore]: a shared collection for multi-instance deployments.
//
// All backends are safe for concurrent use. Lookups of a missing project
// return an error with code PROJECT_NOT_FOUND.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Project is a stored floor plan with the program it was generated from.
type Project struct {
	ID        string         `json:"id" bson:"_id"`
	Name      string         `json:"name" bson:"name"`
	Variant   string         `json:"variant" bson:"variant"`
	Program   plan.Program   `json:"program" bson:"program"`
	Document  *plan.Document `json:"document" bson:"document"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updated_at"`
}

// Store is the project persistence interface.
type Store interface {
	// Create stores a new project, assigning an id when p.ID is empty and
	// setting both timestamps.
	Create(ctx context.Context, p *Project) error
	// Get returns a copy of the project.
	Get(ctx context.Context, id string) (*Project, error)
	// Save replaces an existing project and bumps UpdatedAt.
	Save(ctx context.Context, p *Project) error
	// Delete removes a project.
	Delete(ctx context.Context, id string) error
	// List returns all projects, oldest first.
	List(ctx context.Context) ([]*Project, error)
	Close() error
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	c := *p
	if p.Document != nil {
		c.Document = p.Document.Clone()
	}
	return &c
}

func prepareCreate(p *Project, now time.Time) error {
	if err := errors.ValidateProjectName(p.Name); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Document == nil {
		p.Document = plan.NewDocument(p.Variant, p.Program.Plot(), p.Program.Floors)
	}
	now = now.UTC().Truncate(time.Millisecond)
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeProjectNotFound, "project %s not found", id)
}
