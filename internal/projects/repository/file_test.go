package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
)

func TestFileMissingBackingFile(t *testing.T) {
	repo := NewFile(filepath.Join(t.TempDir(), "does-not-exist.json"))

	projects, err := repo.List(context.Background())

	require.NoError(t, err, "a missing store file means no projects yet, not an error")
	assert.Empty(t, projects)
}

func TestFileCorruptBackingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path).List(context.Background())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestFilePersistsPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	repo := NewFile(path)

	_, err := repo.Create(context.Background(), validDraft())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ", "file is pretty-printed")

	var projects []domain.Project
	require.NoError(t, json.Unmarshal(data, &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "X", projects[0].Title)
}

func TestFileRoundTripsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	ctx := context.Background()

	created, err := NewFile(path).Create(ctx, validDraft())
	require.NoError(t, err)

	// A fresh instance over the same path sees the same records.
	projects, err := NewFile(path).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, *created, projects[0])
}
