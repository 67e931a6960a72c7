package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// Verify interface compliance.
var _ driven.RecordClient = (*Client)(nil)

// Client talks to the record service REST API.
type Client struct {
	cfg         Config
	http        *http.Client
	rateLimiter *RateLimiter
	metrics     *metrics
}

// NewClient creates a client. Missing credentials are logged here and
// surface as errors when a request is made.
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseID == "" {
		logger.Warn("airtable: base ID is not configured")
	}
	if cfg.APIKey == "" {
		logger.Warn("airtable: API key is not configured")
	}

	return &Client{
		cfg:         cfg,
		http:        newHTTPClient(cfg),
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		metrics:     newMetrics(cfg.Registerer),
	}
}

func newHTTPClient(cfg Config) *http.Client {
	base := http.DefaultTransport
	if cfg.HTTPClient != nil && cfg.HTTPClient.Transport != nil {
		base = cfg.HTTPClient.Transport
	}

	transport := base
	if cfg.APIKey != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey}),
			Base:   base,
		}
	}

	return &http.Client{Transport: transport, Timeout: cfg.Timeout}
}

// RateLimiter returns the client's rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// List fetches one page of records.
func (c *Client) List(ctx context.Context, table string, q domain.Query) (domain.Page, error) {
	endpoint, err := c.tableURL(table)
	if err != nil {
		return domain.Page{}, err
	}
	if params := encodeQuery(q); params != "" {
		endpoint += "?" + params
	}

	data, err := c.do(ctx, http.MethodGet, table, endpoint, nil, true)
	if err != nil {
		return domain.Page{}, err
	}

	var page domain.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return domain.Page{}, fmt.Errorf("airtable: decode %s page: %w", table, err)
	}
	return page, nil
}

// ListAll fetches every page of records matching q.
func (c *Client) ListAll(ctx context.Context, table string, q domain.Query) ([]domain.Record, error) {
	return ListAll(ctx, c, table, q)
}

// Create writes a new row and returns it as stored.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (domain.Record, error) {
	endpoint, err := c.tableURL(table)
	if err != nil {
		return domain.Record{}, err
	}

	body, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return domain.Record{}, fmt.Errorf("airtable: encode %s record: %w", table, err)
	}

	// A create that reached the service may have been stored, so only a
	// 429 (rejected unprocessed) is repeated.
	data, err := c.do(ctx, http.MethodPost, table, endpoint, body, false)
	if err != nil {
		return domain.Record{}, err
	}

	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("airtable: decode %s record: %w", table, err)
	}
	return rec, nil
}

func (c *Client) tableURL(table string) (string, error) {
	if c.cfg.BaseID == "" {
		return "", fmt.Errorf("airtable: base ID: %w", domain.ErrMissingConfig)
	}
	if table == "" {
		return "", fmt.Errorf("airtable: table: %w", domain.ErrInvalidInput)
	}
	return fmt.Sprintf("%s/v0/%s/%s",
		strings.TrimRight(c.cfg.APIURL, "/"),
		url.PathEscape(c.cfg.BaseID),
		url.PathEscape(table)), nil
}

// do sends the request, repeating it on retryable failures with
// exponential backoff. Requests that are not idempotent are repeated only
// after rate limiting.
func (c *Client) do(ctx context.Context, method, table, endpoint string, body []byte, idempotent bool) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.metrics.retries.WithLabelValues(table).Inc()
			logger.Debug("airtable: retrying %s %s (attempt %d): %v", method, table, attempt, lastErr)
			if err := sleep(ctx, c.backoff(attempt)); err != nil {
				return nil, err
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		data, err := c.roundTrip(ctx, method, table, endpoint, body)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !IsRetryable(err) || (!idempotent && !IsRateLimited(err)) {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) roundTrip(ctx context.Context, method, table, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("airtable: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(table, method, 0, started)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.observe(table, method, resp.StatusCode, started)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       truncate(data),
			URL:        redact(endpoint),
		}
		logger.Debug("airtable: %s %s -> %d", method, table, resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp)
			c.rateLimiter.RecordRateLimit(wait)
			return nil, &RateLimitError{RetryAfter: wait, Err: apiErr}
		}
		return nil, apiErr
	}

	return data, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.cfg.RetryDelay << (attempt - 1)
	if delay <= 0 || delay > MaxRetryDelay {
		delay = MaxRetryDelay
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// encodeQuery renders q as the service's query string.
func encodeQuery(q domain.Query) string {
	params := url.Values{}
	if q.Filter != "" {
		params.Set("filterByFormula", q.Filter)
	}
	if q.View != "" {
		params.Set("view", q.View)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.MaxRecords > 0 {
		params.Set("maxRecords", strconv.Itoa(q.MaxRecords))
	}
	if q.Offset != "" {
		params.Set("offset", q.Offset)
	}
	for _, f := range q.Fields {
		params.Add("fields[]", f)
	}
	for i, s := range q.Sort {
		dir := s.Direction
		if dir == "" {
			dir = domain.Asc
		}
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		params.Set(fmt.Sprintf("sort[%d][direction]", i), string(dir))
	}
	return params.Encode()
}

// redact drops the query string, which may contain visitor input.
func redact(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
