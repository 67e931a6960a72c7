package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

// Ensure VideoService implements the interface.
var _ driving.VideoService = (*VideoService)(nil)

// VideoService serves the interviews library.
type VideoService struct {
	client   driven.RecordClient
	resolver *SpeakerResolver
	table    string
}

// NewVideoService creates a new video service.
func NewVideoService(client driven.RecordClient, resolver *SpeakerResolver, table string) *VideoService {
	return &VideoService{
		client:   client,
		resolver: resolver,
		table:    table,
	}
}

// ListPublished returns every published video, newest first.
func (s *VideoService) ListPublished(ctx context.Context) ([]domain.Video, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	rows, err := s.client.ListAll(ctx, s.table, domain.Query{
		Sort: []domain.Sort{{Field: "Publish Date", Direction: domain.Desc}},
	})
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	published := make([]domain.Video, 0, len(rows))
	for _, row := range rows {
		if v := records.Video(row); records.IsPublished(v) {
			published = append(published, v)
		}
	}

	if s.resolver != nil {
		if published, err = s.resolver.ApplyToVideos(ctx, published); err != nil {
			return nil, err
		}
	}

	logger.Debug("fetched %d published videos of %d", len(published), len(rows))
	return published, nil
}

// ForSpeaker returns a speaker's published videos grouped by type. The
// speaker is matched by slug or by record ID, ignoring case.
func (s *VideoService) ForSpeaker(ctx context.Context, speakerSlug string) (*domain.SpeakerVideos, error) {
	speakerSlug = strings.TrimSpace(speakerSlug)
	if speakerSlug == "" {
		return nil, domain.ErrInvalidInput
	}

	published, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.SpeakerVideos{
		Highlights: []domain.Video{},
		Reels:      []domain.Video{},
		All:        []domain.Video{},
	}
	for _, v := range published {
		id, _ := v.SpeakerRef.ID()
		if !strings.EqualFold(v.SpeakerSlug, speakerSlug) && !strings.EqualFold(id, speakerSlug) {
			continue
		}

		result.All = append(result.All, v)
		switch v.Type {
		case domain.VideoFullInterview:
			if result.Full == nil {
				full := v
				result.Full = &full
			}
		case domain.VideoHighlight:
			result.Highlights = append(result.Highlights, v)
		case domain.VideoVerticalReel:
			result.Reels = append(result.Reels, v)
		}
	}

	return result, nil
}
