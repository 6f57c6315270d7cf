package repository

import (
	"context"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
)

// Repository is the storage-agnostic CRUD contract over projects. The
// backing store (memory, flat file, Firestore) is chosen once at startup;
// call sites never branch on backend type.
type Repository interface {
	// List returns all projects in backend order. Callers must not assume
	// an order; the service layer re-sorts for presentation.
	List(ctx context.Context) ([]domain.Project, error)

	// Get returns the project with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// Create validates the draft, assigns ID and CreatedAt, persists, and
	// returns the stored record.
	Create(ctx context.Context, draft domain.Draft) (*domain.Project, error)

	// Update merges the patch onto the stored record, preserving ID and
	// CreatedAt, and returns the merged record. domain.ErrNotFound when no
	// record with the id exists.
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.Project, error)

	// Delete removes the record. domain.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id string) error

	// BulkImport upserts by id: incoming projects with a matching id replace
	// the stored record in place, the rest are prepended. Not atomic.
	BulkImport(ctx context.Context, projects []domain.Project) error
}

// upsert applies BulkImport semantics to an in-memory list and returns the
// resulting list. Shared by the memory and file adapters.
func upsert(existing, incoming []domain.Project) []domain.Project {
	byID := make(map[string]int, len(existing))
	for i, p := range existing {
		byID[p.ID] = i
	}

	var fresh []domain.Project
	for _, p := range incoming {
		if i, ok := byID[p.ID]; ok {
			existing[i] = p
		} else {
			fresh = append(fresh, p)
		}
	}
	return append(fresh, existing...)
}
