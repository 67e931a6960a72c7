package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

// Ensure SpeakerService implements the interface.
var _ driving.SpeakerService = (*SpeakerService)(nil)

// SpeakerService serves speaker profiles.
type SpeakerService struct {
	client driven.RecordClient
	table  string
}

// NewSpeakerService creates a new speaker service.
func NewSpeakerService(client driven.RecordClient, table string) *SpeakerService {
	return &SpeakerService{client: client, table: table}
}

// GetBySlug returns the speaker whose Slug column matches, ignoring case.
func (s *SpeakerService) GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}

	page, err := s.client.List(ctx, s.table, domain.Query{
		Filter:     airtable.LowerEq(records.FieldSlug, slug),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("get speaker %q: %w", slug, err)
	}
	if len(page.Records) == 0 {
		return nil, domain.ErrNotFound
	}

	speaker := records.Speaker(page.Records[0])
	return &speaker, nil
}

// List returns every published speaker, reading all pages.
func (s *SpeakerService) List(ctx context.Context) ([]domain.Speaker, error) {
	return s.published(ctx, false)
}

// Featured returns the published speakers with the Featured box ticked.
func (s *SpeakerService) Featured(ctx context.Context) ([]domain.Speaker, error) {
	return s.published(ctx, true)
}

func (s *SpeakerService) published(ctx context.Context, featuredOnly bool) ([]domain.Speaker, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	rows, err := s.client.ListAll(ctx, s.table, domain.Query{
		Sort: []domain.Sort{{Field: records.FieldFullName, Direction: domain.Asc}},
	})
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}

	speakers := make([]domain.Speaker, 0, len(rows))
	for _, row := range rows {
		speaker := records.Speaker(row)
		if !records.SpeakerIsPublished(speaker) || (featuredOnly && !speaker.Featured) {
			continue
		}
		speakers = append(speakers, speaker)
	}

	logger.Debug("fetched %d published speakers of %d (featured only: %t)", len(speakers), len(rows), featuredOnly)
	return speakers, nil
}
