package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
)

// File persists the whole project list as a single pretty-printed JSON array.
// Every write reads the file, mutates in memory, and rewrites it. There is no
// locking; the single-admin assumption makes last-writer-wins acceptable.
type File struct {
	path string
}

// NewFile creates a flat-file repository at the given path. The file is
// created lazily on first write; a missing file means an empty portfolio.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() ([]domain.Project, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Project{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}
	return projects, nil
}

func (f *File) save(projects []domain.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}
	return nil
}

func (f *File) List(ctx context.Context) ([]domain.Project, error) {
	return f.load()
}

func (f *File) Get(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *File) Create(ctx context.Context, draft domain.Draft) (*domain.Project, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	projects, err := f.load()
	if err != nil {
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

	if err := f.save(append([]domain.Project{p}, projects...)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (f *File) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Project, error) {
	projects, err := f.load()
	if err != nil {
		return nil, err
	}

	for i, p := range projects {
		if p.ID == id {
			merged := patch.Apply(p)
			projects[i] = merged
			if err := f.save(projects); err != nil {
				return nil, err
			}
			return &merged, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *File) Delete(ctx context.Context, id string) error {
	projects, err := f.load()
	if err != nil {
		return err
	}

	for i, p := range projects {
		if p.ID == id {
			return f.save(append(projects[:i], projects[i+1:]...))
		}
	}
	return domain.ErrNotFound
}

func (f *File) BulkImport(ctx context.Context, incoming []domain.Project) error {
	projects, err := f.load()
	if err != nil {
		return err
	}
	return f.save(upsert(projects, incoming))
}
