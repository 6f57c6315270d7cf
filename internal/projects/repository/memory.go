package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
)

// Memory keeps the project list in process memory, newest first. It backs
// local development and the repository contract tests.
type Memory struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewMemory creates an in-memory repository seeded with the given projects.
func NewMemory(seed ...domain.Project) *Memory {
	m := &Memory{projects: make([]domain.Project, 0, len(seed))}
	m.projects = append(m.projects, seed...)
	return m
}

func (m *Memory) List(ctx context.Context) ([]domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) Create(ctx context.Context, draft domain.Draft) (*domain.Project, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	p := domain.Project{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Description:  draft.Description,
		Technologies: draft.Technologies,
		Keywords:     draft.Keywords,
		ImageURL:     draft.ImageURL,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append([]domain.Project{p}, m.projects...)
	return &p, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.projects {
		if p.ID == id {
			merged := patch.Apply(p)
			m.projects[i] = merged
			return &merged, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.projects {
		if p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *Memory) BulkImport(ctx context.Context, projects []domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects = upsert(m.projects, projects)
	return nil
}
