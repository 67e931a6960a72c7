package driven

import (
	"context"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// DraftStore persists consultant application drafts so that a failed or
// interrupted submission never loses what the applicant typed.
type DraftStore interface {
	// Save stores or updates a draft.
	Save(ctx context.Context, draft domain.ApplicationDraft) error

	// Get retrieves a draft by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.ApplicationDraft, error)

	// Delete removes a draft. Deleting a missing draft is not an error.
	Delete(ctx context.Context, id string) error
}
