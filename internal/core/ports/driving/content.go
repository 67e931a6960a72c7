package driving

import (
	"context"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// SpeakerService serves speaker profiles.
type SpeakerService interface {
	// GetBySlug returns the speaker whose slug matches, case-insensitively.
	// Returns domain.ErrNotFound when no row matches.
	GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error)

	// List returns every published speaker ordered by name.
	List(ctx context.Context) ([]domain.Speaker, error)

	// Featured returns the published speakers flagged as featured.
	Featured(ctx context.Context) ([]domain.Speaker, error)
}

// VideoService serves the interviews library.
type VideoService interface {
	// ListPublished returns published videos, newest first, with speaker
	// names and slugs resolved.
	ListPublished(ctx context.Context) ([]domain.Video, error)

	// ForSpeaker returns one speaker's published videos grouped by type.
	ForSpeaker(ctx context.Context, speakerSlug string) (*domain.SpeakerVideos, error)
}

// ConsultantService serves the consultants directory.
type ConsultantService interface {
	// Landing returns the published landing copy, or the most recently
	// updated row when none is published.
	Landing(ctx context.Context) (*domain.ConsultantsLanding, error)

	// List returns one directory page.
	List(ctx context.Context, filter domain.ConsultantFilter) (*domain.ConsultantPage, error)

	// GetBySlug returns a published consultant.
	GetBySlug(ctx context.Context, slug string) (*domain.Consultant, error)

	// GetByIDs returns the published consultants among ids, in id order.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Consultant, error)

	// Featured returns the consultants featured on the landing page.
	Featured(ctx context.Context) ([]domain.Consultant, error)
}

// AcademyService serves the academy pages.
type AcademyService interface {
	// Landing returns the published academy landing copy.
	Landing(ctx context.Context) (*domain.AcademyLanding, error)

	// Courses returns every published course in display order.
	Courses(ctx context.Context) ([]domain.AcademyCourse, error)

	// CourseBySlug returns a published course.
	CourseBySlug(ctx context.Context, slug string) (*domain.AcademyCourse, error)
}

// CampaignService serves campaign microsites.
type CampaignService interface {
	// Microsite returns the live campaign for a country and slug with its
	// speaker cards.
	Microsite(ctx context.Context, country, slug string) (*domain.Microsite, error)
}
