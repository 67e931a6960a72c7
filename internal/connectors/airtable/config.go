package airtable

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DefaultAPIURL is the record service endpoint.
	DefaultAPIURL = "https://api.airtable.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// RetryDelay is the initial delay between retries.
	RetryDelay = time.Second

	// MaxRetryDelay caps the exponential backoff.
	MaxRetryDelay = 30 * time.Second
)

// Config holds client settings.
type Config struct {
	APIURL string
	BaseID string
	APIKey string

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the transport. Authentication is still added.
	HTTPClient *http.Client

	// Registerer receives the client's metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// DefaultConfig returns a Config with the service's defaults and no
// credentials.
func DefaultConfig() Config {
	return Config{
		APIURL:            DefaultAPIURL,
		Timeout:           DefaultTimeout,
		MaxRetries:        MaxRetries,
		RetryDelay:        RetryDelay,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
	}
}
