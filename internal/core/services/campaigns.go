package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/links"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

const (
	// MaxCampaignSpeakers is the number of speaker cards a microsite shows.
	MaxCampaignSpeakers = 5

	// DefaultPrimaryCTA labels the hero button when the campaign sets none.
	DefaultPrimaryCTA = "Book a 15-Min Diagnostic"

	campaignSpeakersPageSize = 50
)

// Ensure CampaignService implements the interface.
var _ driving.CampaignService = (*CampaignService)(nil)

// CampaignService serves campaign microsites.
type CampaignService struct {
	client    driven.RecordClient
	campaigns string
	speakers  string
	whatsapp  links.WhatsApp
}

// NewCampaignService creates a new campaign service. Speaker cards link to
// the booking form prefilled with the speaker's name.
func NewCampaignService(client driven.RecordClient, campaignsTable, speakersTable string, whatsapp links.WhatsApp) *CampaignService {
	return &CampaignService{
		client:    client,
		campaigns: campaignsTable,
		speakers:  speakersTable,
		whatsapp:  whatsapp,
	}
}

// Microsite returns the live campaign for country and slug with its top
// speaker cards.
func (s *CampaignService) Microsite(ctx context.Context, country, slug string) (*domain.Microsite, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}
	iso2 := strings.ToUpper(strings.TrimSpace(country))
	slug = strings.TrimSpace(slug)
	if iso2 == "" || slug == "" {
		return nil, domain.ErrInvalidInput
	}

	page, err := s.client.List(ctx, s.campaigns, domain.Query{
		Filter: airtable.And(
			airtable.Eq(records.FieldStatus, domain.CampaignStatusLive),
			airtable.Eq("Country (ISO2)", iso2),
			airtable.Eq(records.FieldSlug, slug),
		),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("get campaign %s/%s: %w", iso2, slug, err)
	}
	if len(page.Records) == 0 {
		return nil, domain.ErrNotFound
	}
	campaign := records.Campaign(page.Records[0])

	cards, err := s.cards(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}

	site := &domain.Microsite{
		Campaign:    campaign,
		Speakers:    cards,
		BookURL:     links.BookRoute,
		WhatsAppURL: s.whatsapp.Link(links.GeneralMessage()),
		PrimaryCTA:  campaign.PrimaryCTALabel,
	}
	if site.PrimaryCTA == "" {
		site.PrimaryCTA = DefaultPrimaryCTA
	}
	site.PrimaryCTAHref = links.BookRoute
	if campaign.PrimaryCTAURL != "" {
		site.PrimaryCTAHref = links.AppendUTM(campaign.PrimaryCTAURL, links.UTM{
			Source:   campaign.UTMSource,
			Medium:   campaign.UTMMedium,
			Campaign: campaign.Slug,
		})
	}
	return site, nil
}

// cards returns the speaker cards linked to campaignID, ordered by their
// effective order and capped at MaxCampaignSpeakers.
func (s *CampaignService) cards(ctx context.Context, campaignID string) ([]domain.CampaignSpeaker, error) {
	rows, err := s.client.ListAll(ctx, s.speakers, domain.Query{PageSize: campaignSpeakersPageSize})
	if err != nil {
		return nil, fmt.Errorf("list campaign speakers: %w", err)
	}

	var cards []domain.CampaignSpeaker
	for _, row := range rows {
		card := records.CampaignSpeaker(row)
		if !slices.Contains(card.CampaignIDs, campaignID) {
			continue
		}
		card.BookURL = links.BookURL(card.DisplayName)
		cards = append(cards, card)
	}

	slices.SortStableFunc(cards, func(a, b domain.CampaignSpeaker) int {
		return a.Order - b.Order
	})
	if len(cards) > MaxCampaignSpeakers {
		cards = cards[:MaxCampaignSpeakers]
	}
	if cards == nil {
		cards = []domain.CampaignSpeaker{}
	}
	return cards, nil
}
