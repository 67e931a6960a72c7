package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asb-site/internal/adapters/driven/config/file"
	"github.com/custodia-labs/asb-site/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/services"
)

type mockSpeakers struct {
	speaker  *domain.Speaker
	speakers []domain.Speaker
	err      error
}

func (m *mockSpeakers) GetBySlug(_ context.Context, slug string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.speaker == nil || m.speaker.Slug != slug {
		return nil, domain.ErrNotFound
	}
	return m.speaker, nil
}

func (m *mockSpeakers) List(context.Context) ([]domain.Speaker, error) {
	return m.speakers, m.err
}

func (m *mockSpeakers) Featured(context.Context) ([]domain.Speaker, error) {
	var featured []domain.Speaker
	for _, s := range m.speakers {
		if s.Featured {
			featured = append(featured, s)
		}
	}
	return featured, m.err
}

type mockVideos struct {
	videos  []domain.Video
	grouped *domain.SpeakerVideos
	err     error
}

func (m *mockVideos) ListPublished(context.Context) ([]domain.Video, error) {
	return m.videos, m.err
}

func (m *mockVideos) ForSpeaker(context.Context, string) (*domain.SpeakerVideos, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.grouped == nil {
		return &domain.SpeakerVideos{}, nil
	}
	return m.grouped, nil
}

type mockConsultants struct {
	landing    *domain.ConsultantsLanding
	page       *domain.ConsultantPage
	consultant *domain.Consultant
	featured   []domain.Consultant
	lastFilter domain.ConsultantFilter
	err        error
}

func (m *mockConsultants) Landing(context.Context) (*domain.ConsultantsLanding, error) {
	if m.landing == nil {
		return nil, domain.ErrNotFound
	}
	return m.landing, m.err
}

func (m *mockConsultants) List(_ context.Context, f domain.ConsultantFilter) (*domain.ConsultantPage, error) {
	m.lastFilter = f
	if m.err != nil {
		return nil, m.err
	}
	if m.page == nil {
		return &domain.ConsultantPage{}, nil
	}
	return m.page, nil
}

func (m *mockConsultants) GetBySlug(_ context.Context, slug string) (*domain.Consultant, error) {
	if m.consultant == nil || m.consultant.Slug != slug {
		return nil, domain.ErrNotFound
	}
	return m.consultant, nil
}

func (m *mockConsultants) GetByIDs(context.Context, []string) ([]domain.Consultant, error) {
	return nil, nil
}

func (m *mockConsultants) Featured(context.Context) ([]domain.Consultant, error) {
	return m.featured, m.err
}

type mockAcademy struct {
	landing *domain.AcademyLanding
	courses []domain.AcademyCourse
}

func (m *mockAcademy) Landing(context.Context) (*domain.AcademyLanding, error) {
	if m.landing == nil {
		return nil, domain.ErrNotFound
	}
	return m.landing, nil
}

func (m *mockAcademy) Courses(context.Context) ([]domain.AcademyCourse, error) {
	return m.courses, nil
}

func (m *mockAcademy) CourseBySlug(_ context.Context, slug string) (*domain.AcademyCourse, error) {
	for i := range m.courses {
		if m.courses[i].Slug == slug {
			return &m.courses[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockCampaigns struct {
	site       *domain.Microsite
	gotCountry string
	gotSlug    string
}

func (m *mockCampaigns) Microsite(_ context.Context, country, slug string) (*domain.Microsite, error) {
	m.gotCountry, m.gotSlug = country, slug
	if m.site == nil {
		return nil, domain.ErrNotFound
	}
	return m.site, nil
}

func newConfigStore(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStoreAt(filepath.Join(t.TempDir(), file.ConfigFile))
	require.NoError(t, err)
	return store
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	config      *file.ConfigStore
	speakers    *mockSpeakers
	videos      *mockVideos
	consultants *mockConsultants
	academy     *mockAcademy
	campaigns   *mockCampaigns
}

// setupTestServices installs mocks for every service and restores the
// previous values and flags when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		config:      newConfigStore(t),
		speakers:    &mockSpeakers{},
		videos:      &mockVideos{},
		consultants: &mockConsultants{},
		academy:     &mockAcademy{},
		campaigns:   &mockCampaigns{},
	}

	oldSettings, oldSpeakers, oldVideos := settingsService, speakerService, videoService
	oldConsultants, oldAcademy, oldCampaigns := consultantService, academyService, campaignService
	oldLeads, oldCache := leadService, lookupCache
	oldJSON, oldTerminal := jsonOutput, isTerminal

	settingsService = services.NewSettingsService(ts.config)
	speakerService = ts.speakers
	videoService = ts.videos
	consultantService = ts.consultants
	academyService = ts.academy
	campaignService = ts.campaigns
	leadService = services.NewLeadService(nil, memory.NewDraftStore(), "Client Inquiries", "Speaker Applications")
	lookupCache = memory.NewLookupCache(0)

	t.Cleanup(func() {
		settingsService, speakerService, videoService = oldSettings, oldSpeakers, oldVideos
		consultantService, academyService, campaignService = oldConsultants, oldAcademy, oldCampaigns
		leadService, lookupCache = oldLeads, oldCache
		jsonOutput, isTerminal = oldJSON, oldTerminal
		consultantFilter = domain.ConsultantFilter{}
		speakersFeaturedOnly = false
		rootCmd.SetArgs(nil)
	})

	return ts
}
