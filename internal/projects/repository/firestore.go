package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
)

const projectsCollection = "projects"

// projectDoc is the Firestore document layout. The document key is the
// project id; createdAt lives as a native timestamp and is normalized to an
// ISO-8601 string at the repository boundary.
type projectDoc struct {
	Title        string    `firestore:"title"`
	Description  string    `firestore:"description"`
	Technologies []string  `firestore:"technologies"`
	Keywords     []string  `firestore:"keywords"`
	ImageURL     string    `firestore:"imageUrl"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
}

// Firestore stores each project as a separate document in the projects
// collection. The same adapter serves both trust boundaries of the historical
// system; they differ only in how the client was constructed (see
// bootstrap.OpenFirestore*).
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (r *Firestore) col() *firestore.CollectionRef {
	return r.client.Collection(projectsCollection)
}

func docToProject(id string, d projectDoc) domain.Project {
	return domain.Project{
		ID:           id,
		Title:        d.Title,
		Description:  d.Description,
		Technologies: d.Technologies,
		Keywords:     d.Keywords,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func projectToDoc(p domain.Project) projectDoc {
	created, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		created = time.Now().UTC()
	}
	return projectDoc{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		Keywords:     p.Keywords,
		ImageURL:     p.ImageURL,
		CreatedAt:    created,
	}
}

func mapFirestoreErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (r *Firestore) List(ctx context.Context) ([]domain.Project, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapFirestoreErr("list projects", err)
		}

		var d projectDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", snap.Ref.ID, err)
		}
		out = append(out, docToProject(snap.Ref.ID, d))
	}
	return out, nil
}

func (r *Firestore) Get(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreErr("get project", err)
	}

	var d projectDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	p := docToProject(id, d)
	return &p, nil
}

func (r *Firestore) Create(ctx context.Context, draft domain.Draft) (*domain.Project, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// Zero CreatedAt lets the store stamp a server-side timestamp. The value
	// returned here is the client-clock approximation until the next read
	// resolves the authoritative one.
	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, projectDoc{
		Title:        draft.Title,
		Description:  draft.Description,
		Technologies: draft.Technologies,
		Keywords:     draft.Keywords,
		ImageURL:     draft.ImageURL,
	}); err != nil {
		return nil, mapFirestoreErr("create project", err)
	}

	return &domain.Project{
		ID:           doc.ID,
		Title:        draft.Title,
		Description:  draft.Description,
		Technologies: draft.Technologies,
		Keywords:     draft.Keywords,
		ImageURL:     draft.ImageURL,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (r *Firestore) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Project, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(*cur)
	if _, err := r.col().Doc(id).Set(ctx, projectToDoc(merged)); err != nil {
		return nil, mapFirestoreErr("update project", err)
	}
	return &merged, nil
}

func (r *Firestore) Delete(ctx context.Context, id string) error {
	// Delete on a missing document succeeds in Firestore, so existence is
	// checked first to honor the not-found contract.
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return mapFirestoreErr("delete project", err)
	}
	return nil
}

func (r *Firestore) BulkImport(ctx context.Context, projects []domain.Project) error {
	// Per-document sets, no transaction. A failure mid-batch leaves a mix of
	// old and new entries.
	for _, p := range projects {
		if _, err := r.col().Doc(p.ID).Set(ctx, projectToDoc(p)); err != nil {
			return mapFirestoreErr("import project "+p.ID, err)
		}
	}
	return nil
}
