package service

import (
	"context"
	"strings"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
	"github.com/folioforge/portfolio-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic on top of whichever
// repository backend was selected at startup.
type ProjectService struct {
	repo repository.Repository
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortNewestFirst(projects)
	return projects, nil
}

// Add creates a project from raw form fields. Technologies and keywords
// arrive as comma-separated strings; a blank image URL falls back to the
// placeholder.
func (s *ProjectService) Add(ctx context.Context, title, description, technologies, keywords, imageURL string) (*domain.Project, error) {
	if strings.TrimSpace(imageURL) == "" {
		imageURL = domain.PlaceholderImageURL
	}

	draft := domain.Draft{
		Title:        strings.TrimSpace(title),
		Description:  strings.TrimSpace(description),
		Technologies: domain.SplitList(technologies),
		Keywords:     domain.SplitList(keywords),
		ImageURL:     strings.TrimSpace(imageURL),
	}
	return s.repo.Create(ctx, draft)
}

// UpdateFields applies a partial update. Nil inputs leave the stored value
// untouched; list fields are comma-parsed like Add.
func (s *ProjectService) UpdateFields(ctx context.Context, id string, title, description, technologies, keywords, imageURL *string) (*domain.Project, error) {
	var patch domain.Patch
	patch.Title = trimmed(title)
	patch.Description = trimmed(description)
	patch.ImageURL = trimmed(imageURL)
	if technologies != nil {
		list := domain.SplitList(*technologies)
		patch.Technologies = &list
	}
	if keywords != nil {
		list := domain.SplitList(*keywords)
		patch.Keywords = &list
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Import upserts full project records by id.
func (s *ProjectService) Import(ctx context.Context, projects []domain.Project) error {
	return s.repo.BulkImport(ctx, projects)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
