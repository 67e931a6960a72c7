package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

// CoursesPageSize is the page size used when draining the course table.
const CoursesPageSize = 100

// Ensure AcademyService implements the interface.
var _ driving.AcademyService = (*AcademyService)(nil)

// AcademyService serves the academy landing page and courses.
type AcademyService struct {
	client       driven.RecordClient
	landingTable string
	coursesTable string
}

// NewAcademyService creates a new academy service.
func NewAcademyService(client driven.RecordClient, landingTable, coursesTable string) *AcademyService {
	return &AcademyService{
		client:       client,
		landingTable: landingTable,
		coursesTable: coursesTable,
	}
}

// Landing returns the published landing row.
func (s *AcademyService) Landing(ctx context.Context) (*domain.AcademyLanding, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	page, err := s.client.List(ctx, s.landingTable, domain.Query{
		Filter:     publishedFilter(),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("academy landing: %w", err)
	}
	if len(page.Records) == 0 {
		return nil, domain.ErrNotFound
	}

	landing := records.AcademyLanding(page.Records[0])
	return &landing, nil
}

// Courses returns every published course in display order.
func (s *AcademyService) Courses(ctx context.Context) ([]domain.AcademyCourse, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	rows, err := s.client.ListAll(ctx, s.coursesTable, domain.Query{
		Filter:   publishedFilter(),
		Sort:     []domain.Sort{{Field: "Display Order", Direction: domain.Asc}},
		PageSize: CoursesPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]domain.AcademyCourse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, records.AcademyCourse(row))
	}
	return courses, nil
}

// CourseBySlug returns a published course by slug.
func (s *AcademyService) CourseBySlug(ctx context.Context, slug string) (*domain.AcademyCourse, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}

	page, err := s.client.List(ctx, s.coursesTable, domain.Query{
		Filter:     airtable.And(publishedFilter(), airtable.Eq(records.FieldSlug, slug)),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("get course %q: %w", slug, err)
	}
	if len(page.Records) == 0 {
		return nil, domain.ErrNotFound
	}

	course := records.AcademyCourse(page.Records[0])
	return &course, nil
}
