package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

// MemoryStore keeps projects in a map. Values are copied on the way in and
// out so callers never share a Document with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*Project
	now      func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]*Project), now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, p *Project) error {
	if err := prepareCreate(p, s.now()); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "project %s already exists", p.ID)
	}
	s.projects[p.ID] = p.Clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, notFound(id)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.projects[p.ID]
	if !ok {
		return notFound(p.ID)
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)
	s.projects[p.ID] = p.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return notFound(id)
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Project, error) {
	s.mu.RLock()
	out := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	s.mu.RUnlock()
	sortProjects(out)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

func sortProjects(ps []*Project) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		}
		return ps[i].ID < ps[j].ID
	})
}
