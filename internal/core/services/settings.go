package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAirtableAPIURL     = "airtable.api_url"
	KeyAirtableBaseID     = "airtable.base_id"
	KeyAirtableAPIKey     = "airtable.api_key"
	KeyAirtableTimeout    = "airtable.timeout"
	KeyAirtableMaxRetries = "airtable.max_retries"
	KeyAirtableRPS        = "airtable.requests_per_second"
	KeyListenAddr         = "server.listen_addr"
	KeyDraftsDB           = "server.drafts_db"
	KeyWhatsAppPhone      = "whatsapp.phone"
	KeyLookupCacheTTL     = "cache.lookup_ttl"

	tablesPrefix = "tables."
)

// SettingsService reads the data service's settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unparseable values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Airtable: domain.AirtableSettings{
			APIURL:            s.getString(KeyAirtableAPIURL, defaults.Airtable.APIURL),
			BaseID:            s.configStore.GetString(KeyAirtableBaseID),
			APIKey:            s.configStore.GetString(KeyAirtableAPIKey),
			Timeout:           s.getDuration(KeyAirtableTimeout, defaults.Airtable.Timeout),
			MaxRetries:        s.getInt(KeyAirtableMaxRetries, defaults.Airtable.MaxRetries),
			RequestsPerSecond: s.getFloat(KeyAirtableRPS, defaults.Airtable.RequestsPerSecond),
		},
		Tables: defaults.Tables,
		Server: domain.ServerSettings{
			ListenAddr: s.getString(KeyListenAddr, defaults.Server.ListenAddr),
			DraftsDB:   s.configStore.GetString(KeyDraftsDB),
		},
		WhatsAppPhone:  s.getString(KeyWhatsAppPhone, defaults.WhatsAppPhone),
		LookupCacheTTL: s.getDuration(KeyLookupCacheTTL, defaults.LookupCacheTTL),
	}

	for name, field := range tableFields(&settings.Tables) {
		*field = s.getString(tablesPrefix+name, *field)
	}

	return settings, nil
}

// SetTable overrides the table used for name, e.g. "videos".
func (s *SettingsService) SetTable(name, table string) error {
	if _, ok := tableFields(&domain.TableSettings{})[name]; !ok {
		return fmt.Errorf("%w: unknown table %q (want one of %s)",
			domain.ErrInvalidInput, name, strings.Join(TableKeys(), ", "))
	}
	if table == "" {
		return fmt.Errorf("%w: table for %q is empty", domain.ErrInvalidInput, name)
	}
	return s.configStore.Set(tablesPrefix+name, table)
}

// SetAPIKey stores the Airtable access token.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: API key is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(KeyAirtableAPIKey, key)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// TableKeys lists the table names accepted by SetTable.
func TableKeys() []string {
	return []string{
		"videos", "speakers", "speaker_lookup",
		"consultants_landing", "consultants",
		"academy_landing", "academy_courses",
		"campaigns", "campaign_speakers",
		"client_inquiries", "consultant_applications",
	}
}

func tableFields(t *domain.TableSettings) map[string]*string {
	return map[string]*string{
		"videos":                  &t.Videos,
		"speakers":                &t.Speakers,
		"speaker_lookup":          &t.SpeakerLookup,
		"consultants_landing":     &t.ConsultantsLanding,
		"consultants":             &t.Consultants,
		"academy_landing":         &t.AcademyLanding,
		"academy_courses":         &t.AcademyCourses,
		"campaigns":               &t.Campaigns,
		"campaign_speakers":       &t.CampaignSpeakers,
		"client_inquiries":        &t.ClientInquiries,
		"consultant_applications": &t.ConsultantApplications,
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val, ok := s.configStore.Get(key); ok {
		if str, isStr := val.(string); isStr {
			if n, err := strconv.Atoi(str); err == nil {
				return n
			}
			logger.Warn("ignoring invalid %s %q", key, str)
			return defaultVal
		}
		return s.configStore.GetInt(key)
	}
	return defaultVal
}

// getFloat accepts TOML floats and integers as well as strings from the
// environment.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	logger.Warn("ignoring invalid %s %v", key, val)
	return defaultVal
}

// getDuration accepts Go duration strings ("30s") or whole seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	case int64:
		return time.Duration(v) * time.Second
	case int:
		return time.Duration(v) * time.Second
	}
	logger.Warn("ignoring invalid %s %v", key, val)
	return defaultVal
}
