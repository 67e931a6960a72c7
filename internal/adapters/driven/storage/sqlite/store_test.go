package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "asb-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, DatabaseFile)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
		"application_drafts",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	tempDir := t.TempDir()

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.DraftStore().Save(context.Background(), domain.ApplicationDraft{ID: "d1"}))
	require.NoError(t, first.Close())

	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	_, err = second.DraftStore().Get(context.Background(), "d1")
	assert.NoError(t, err)
}

func TestStore_Close(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

// ==================== DraftStore Tests ====================

func TestDraftStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	drafts := store.DraftStore()

	updated := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	draft := domain.ApplicationDraft{
		ID: "draft-1",
		Application: domain.ConsultantApplication{
			FirstName:      "Lerato",
			LastName:       "Dube",
			Email:          "lerato@example.com",
			ExpertiseAreas: []string{"Strategy", "Operations"},
			ProfileImage: []domain.Attachment{
				{URL: "https://cdn.example.com/lerato.jpg", Filename: "lerato.jpg"},
			},
		},
		UpdatedAt: updated,
	}

	require.NoError(t, drafts.Save(ctx, draft))

	got, err := drafts.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "Lerato", got.Application.FirstName)
	assert.Equal(t, []string{"Strategy", "Operations"}, got.Application.ExpertiseAreas)
	require.Len(t, got.Application.ProfileImage, 1)
	assert.Equal(t, "lerato.jpg", got.Application.ProfileImage[0].Filename)
	assert.True(t, updated.Equal(got.UpdatedAt))
}

func TestDraftStore_SaveUpdate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	drafts := store.DraftStore()

	require.NoError(t, drafts.Save(ctx, domain.ApplicationDraft{ID: "draft-1"}))
	require.NoError(t, drafts.Save(ctx, domain.ApplicationDraft{
		ID:          "draft-1",
		Application: domain.ConsultantApplication{Company: "Dube Advisory"},
	}))

	got, err := drafts.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "Dube Advisory", got.Application.Company)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestDraftStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.DraftStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	drafts := store.DraftStore()

	require.NoError(t, drafts.Save(ctx, domain.ApplicationDraft{ID: "draft-1"}))
	require.NoError(t, drafts.Delete(ctx, "draft-1"))

	_, err := drafts.Get(ctx, "draft-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, drafts.Delete(ctx, "draft-1"))
}

func TestDraftStore_SaveRequiresID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DraftStore().Save(context.Background(), domain.ApplicationDraft{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
