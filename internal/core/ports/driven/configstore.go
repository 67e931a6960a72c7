package driven

// ConfigStore holds the service's settings as flat dot-separated keys such
// as "airtable.base_id" or "tables.videos". Implementations may overlay
// values from the environment; such values are read-only and never saved.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value for key when it is a string, else "".
	GetString(key string) string

	// GetInt returns the value for key when it is an integer, else 0.
	GetInt(key string) int

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the stored values.
	Save() error

	// Load re-reads the stored values, replacing those in memory.
	Load() error

	// Path identifies where values are persisted.
	Path() string
}
