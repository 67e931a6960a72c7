// Package airtable implements the record query client for the hosted table
// service that backs the site's content.
//
// # Architecture
//
// The package follows the driven port pattern defined in [driven.RecordClient].
// It comprises the following components:
//
//   - Client: issues list and create requests with authentication, rate
//     limiting, bounded retries and a per-request timeout
//   - ListAll: drains a paginated listing by following continuation tokens
//   - RateLimiter: token bucket throttling plus a shared backoff window after
//     a 429 response
//   - Formula helpers: build filterByFormula expressions with escaped literals
//
// # Authentication
//
// Requests carry the API key as a bearer token. The key and base ID are read
// from configuration; a missing key is reported by the service as 401.
//
// # Rate Limits
//
// The service allows five requests per second per base. The client throttles
// proactively to that rate and, on a 429, pauses all callers for the
// Retry-After period before retrying.
package airtable
