package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

// ConsultantsPageSize is the directory page size.
const ConsultantsPageSize = 24

// Ensure ConsultantService implements the interface.
var _ driving.ConsultantService = (*ConsultantService)(nil)

// ConsultantService serves the consultants directory and landing page.
type ConsultantService struct {
	client       driven.RecordClient
	landingTable string
	table        string
}

// NewConsultantService creates a new consultant service.
func NewConsultantService(client driven.RecordClient, landingTable, table string) *ConsultantService {
	return &ConsultantService{
		client:       client,
		landingTable: landingTable,
		table:        table,
	}
}

func publishedFilter() string {
	return airtable.Eq(records.FieldStatus, domain.StatusPublished)
}

// Landing returns the published landing row. It tries the published view
// first, then the table without the view, and finally falls back to the most
// recently updated row so the page is never empty. Failures of the earlier
// attempts are logged and skipped.
func (s *ConsultantService) Landing(ctx context.Context) (*domain.ConsultantsLanding, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	attempts := []struct {
		name  string
		query domain.Query
	}{
		{"published view", domain.Query{Filter: publishedFilter(), View: domain.StatusPublished, MaxRecords: 1}},
		{"published", domain.Query{Filter: publishedFilter(), MaxRecords: 1}},
		{"latest", domain.Query{Sort: []domain.Sort{{Field: "Last Updated", Direction: domain.Desc}}, MaxRecords: 1}},
	}

	var lastErr error
	for _, attempt := range attempts {
		page, err := s.client.List(ctx, s.landingTable, attempt.query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Debug("consultants landing (%s) failed: %v", attempt.name, err)
			lastErr = err
			continue
		}
		if len(page.Records) > 0 {
			landing := records.ConsultantsLanding(page.Records[0])
			logger.Debug("consultants landing (%s): %s", attempt.name, landing.PageName)
			return &landing, nil
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("consultants landing: %w", lastErr)
	}
	return nil, domain.ErrNotFound
}

// List returns one directory page of published consultants.
func (s *ConsultantService) List(ctx context.Context, filter domain.ConsultantFilter) (*domain.ConsultantPage, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	clauses := []string{publishedFilter()}
	if v := strings.TrimSpace(filter.Country); v != "" {
		clauses = append(clauses, airtable.Eq("Country", v))
	}
	if v := strings.TrimSpace(filter.Availability); v != "" {
		clauses = append(clauses, airtable.Eq("Availability Window", v))
	}
	if v := strings.TrimSpace(filter.FeeBand); v != "" {
		clauses = append(clauses, airtable.Eq("Fee Range General", v))
	}
	if v := strings.TrimSpace(filter.Search); v != "" {
		clauses = append(clauses, searchClause(v))
	}

	page, err := s.client.List(ctx, s.table, domain.Query{
		Filter:   airtable.And(clauses...),
		PageSize: ConsultantsPageSize,
		Offset:   filter.Offset,
		Sort: []domain.Sort{
			{Field: "Directory Order", Direction: domain.Asc},
			{Field: records.FieldFullName, Direction: domain.Asc},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}

	result := &domain.ConsultantPage{
		Consultants: make([]domain.Consultant, 0, len(page.Records)),
		Offset:      page.Offset,
	}
	for _, row := range page.Records {
		result.Consultants = append(result.Consultants, records.Consultant(row))
	}
	return result, nil
}

// searchClause matches term against the name, title and company columns.
func searchClause(term string) string {
	needle := airtable.Escape(strings.ToLower(term))
	var parts []string
	for _, field := range []string{records.FieldFullName, "Professional Title", "Company / Firm"} {
		parts = append(parts, fmt.Sprintf("FIND('%s', LOWER({%s}))", needle, field))
	}
	return airtable.Or(parts...)
}

// GetBySlug returns a published consultant by slug.
func (s *ConsultantService) GetBySlug(ctx context.Context, slug string) (*domain.Consultant, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}

	page, err := s.client.List(ctx, s.table, domain.Query{
		Filter:     airtable.And(publishedFilter(), airtable.Eq(records.FieldSlug, slug)),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("get consultant %q: %w", slug, err)
	}
	if len(page.Records) == 0 {
		return nil, domain.ErrNotFound
	}

	consultant := records.Consultant(page.Records[0])
	return &consultant, nil
}

// GetByIDs returns the published consultants among ids in the order the ids
// were given. Unknown or unpublished ids are skipped.
func (s *ConsultantService) GetByIDs(ctx context.Context, ids []string) ([]domain.Consultant, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}
	unique := dedupe(ids)
	if len(unique) == 0 {
		return []domain.Consultant{}, nil
	}

	byID := make(map[string]domain.Consultant, len(unique))
	for _, chunk := range airtable.Chunk(unique, DefaultLookupChunkSize) {
		rows, err := s.client.ListAll(ctx, s.table, domain.Query{
			Filter: airtable.And(publishedFilter(), airtable.RecordIDIn(chunk)),
		})
		if err != nil {
			return nil, fmt.Errorf("get consultants by id: %w", err)
		}
		for _, row := range rows {
			byID[row.ID] = records.Consultant(row)
		}
	}

	out := make([]domain.Consultant, 0, len(byID))
	for _, id := range unique {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Featured returns the consultants the landing row features. When the landing
// row features nobody, the directory's first published consultants flagged
// as featured are returned instead.
func (s *ConsultantService) Featured(ctx context.Context) ([]domain.Consultant, error) {
	landing, err := s.Landing(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if landing != nil && len(landing.FeaturedConsultantIDs) > 0 {
		return s.GetByIDs(ctx, landing.FeaturedConsultantIDs)
	}

	page, err := s.List(ctx, domain.ConsultantFilter{})
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Consultant, 0, len(page.Consultants))
	for _, c := range page.Consultants {
		if c.Featured {
			featured = append(featured, c)
		}
	}
	return featured, nil
}
