package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/custodia-labs/asb-site/internal/adapters/driven/config/file"
	"github.com/custodia-labs/asb-site/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/asb-site/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/services"
	"github.com/custodia-labs/asb-site/internal/links"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// skipWiring marks commands that run without configuration.
const skipWiring = "asb/skip-wiring"

var (
	configStore *file.ConfigStore
	registry    *prometheus.Registry

	// draftsDir overrides where application drafts are stored. Set by serve.
	draftsDir string

	closers []io.Closer
)

// wire builds the services from configuration. It is a no-op when the
// services were already set.
func wire() error {
	if settingsService != nil && speakerService != nil {
		return nil
	}

	store, err := openConfigStore(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store.BindEnvs(file.SiteEnv)
	configStore = store
	logger.Section("Configuration")
	logger.Info("config file: %s", store.Path())

	svc := services.NewSettingsService(store)
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		if !errors.Is(err, domain.ErrMissingConfig) {
			return err
		}
		// Requests fail lazily; commands such as "config" still work.
		logger.Warn("%v", err)
	}
	settingsService = svc
	logger.Info("airtable base: %s", settings.Airtable.BaseID)

	registry = prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := airtable.NewClient(airtableConfig(settings, registry))
	drafts, err := openDraftStore(settings)
	if err != nil {
		return err
	}

	buildServices(settings, client, drafts)
	return nil
}

func openConfigStore(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.NewConfigStoreAt(path)
	}
	return file.NewConfigStore("")
}

func airtableConfig(s *domain.Settings, reg prometheus.Registerer) airtable.Config {
	cfg := airtable.DefaultConfig()
	cfg.APIURL = s.Airtable.APIURL
	cfg.BaseID = s.Airtable.BaseID
	cfg.APIKey = s.Airtable.APIKey
	cfg.Timeout = s.Airtable.Timeout
	cfg.MaxRetries = s.Airtable.MaxRetries
	if s.Airtable.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = s.Airtable.RequestsPerSecond
	}
	cfg.Registerer = reg
	return cfg
}

// openDraftStore keeps drafts in sqlite when a drafts directory is
// configured and in memory otherwise.
func openDraftStore(s *domain.Settings) (driven.DraftStore, error) {
	dir := draftsDir
	if dir == "" {
		dir = s.Server.DraftsDB
	}
	if dir == "" {
		return memory.NewDraftStore(), nil
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open drafts database: %w", err)
	}
	closers = append(closers, store)
	logger.Info("application drafts stored in %s", store.Path())
	return store.DraftStore(), nil
}

func buildServices(s *domain.Settings, client driven.RecordClient, drafts driven.DraftStore) {
	t := s.Tables
	cache := memory.NewLookupCache(s.LookupCacheTTL)
	resolver := services.NewSpeakerResolver(client, cache, t.SpeakerLookup)

	lookupCache = cache
	speakerService = services.NewSpeakerService(client, t.Speakers)
	videoService = services.NewVideoService(client, resolver, t.Videos)
	consultantService = services.NewConsultantService(client, t.ConsultantsLanding, t.Consultants)
	academyService = services.NewAcademyService(client, t.AcademyLanding, t.AcademyCourses)
	campaignService = services.NewCampaignService(client, t.Campaigns, t.CampaignSpeakers, links.NewWhatsApp(s.WhatsAppPhone))
	leadService = services.NewLeadService(client, drafts, t.ClientInquiries, t.ConsultantApplications)
}

func closeResources() error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	closers = nil
	return errors.Join(errs...)
}
