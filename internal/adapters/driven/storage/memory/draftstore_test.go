package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

func TestDraftStore_SaveGet(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	draft := domain.ApplicationDraft{
		ID: "draft-1",
		Application: domain.ConsultantApplication{
			FirstName:      "Lerato",
			ExpertiseAreas: []string{"Strategy"},
		},
		UpdatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(ctx, draft))

	got, err := store.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, draft, *got)
}

func TestDraftStore_Update(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.ApplicationDraft{ID: "draft-1"}))
	require.NoError(t, store.Save(ctx, domain.ApplicationDraft{
		ID:          "draft-1",
		Application: domain.ConsultantApplication{Email: "lerato@example.com"},
	}))

	got, err := store.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "lerato@example.com", got.Application.Email)
}

func TestDraftStore_GetMissing(t *testing.T) {
	store := NewDraftStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_Delete(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.ApplicationDraft{ID: "draft-1"}))
	require.NoError(t, store.Delete(ctx, "draft-1"))
	require.NoError(t, store.Delete(ctx, "draft-1"))

	_, err := store.Get(ctx, "draft-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_SaveRequiresID(t *testing.T) {
	store := NewDraftStore()
	err := store.Save(context.Background(), domain.ApplicationDraft{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
