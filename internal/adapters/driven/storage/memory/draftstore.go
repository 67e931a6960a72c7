package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
)

// Ensure DraftStore implements the interface.
var _ driven.DraftStore = (*DraftStore)(nil)

// DraftStore is an in-memory implementation of driven.DraftStore.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.ApplicationDraft
}

// NewDraftStore creates a new in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]domain.ApplicationDraft),
	}
}

// Save stores or updates a draft.
func (s *DraftStore) Save(_ context.Context, draft domain.ApplicationDraft) error {
	if draft.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return nil
}

// Get retrieves a draft by ID.
func (s *DraftStore) Get(_ context.Context, id string) (*domain.ApplicationDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &draft, nil
}

// Delete removes a draft.
func (s *DraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
