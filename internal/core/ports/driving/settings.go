package driving

import "github.com/custodia-labs/asb-site/internal/core/domain"

// SettingsService resolves the data service's configuration.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (*domain.Settings, error)

	// SetTable overrides one table name and persists it.
	SetTable(name, table string) error

	// SetAPIKey stores the Airtable access token.
	SetAPIKey(key string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
