package driving

import (
	"context"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// LeadService writes lead-capture form submissions to the record service.
type LeadService interface {
	// SubmitBooking records a "book a speaker" inquiry.
	SubmitBooking(ctx context.Context, inquiry domain.BookingInquiry) (*domain.Submission, error)

	// SubmitConsultantApplication records a consultant application under a
	// unique slug. When draftID is set the draft is removed on success.
	SubmitConsultantApplication(ctx context.Context, app domain.ConsultantApplication, draftID string) (*domain.Submission, error)

	// SaveDraft stores an application draft, assigning an ID when empty.
	SaveDraft(ctx context.Context, draft domain.ApplicationDraft) (*domain.ApplicationDraft, error)

	// GetDraft returns a saved draft.
	GetDraft(ctx context.Context, id string) (*domain.ApplicationDraft, error)

	// DeleteDraft removes a saved draft.
	DeleteDraft(ctx context.Context, id string) error
}
