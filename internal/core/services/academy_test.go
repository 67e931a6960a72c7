package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

func TestAcademyService_Landing(t *testing.T) {
	client := &fakeRecordClient{list: staticPage(record("recAcademy0000001", domain.Fields{
		"Page Name": "Academy",
	}))}
	svc := NewAcademyService(client, "tblAcademyLanding", "tblAcademyCourses")

	landing, err := svc.Landing(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Academy", landing.PageName)
	assert.Equal(t, "tblAcademyLanding", client.listCalls()[0].table)
	assert.Equal(t, 1, client.listCalls()[0].query.MaxRecords)
}

func TestAcademyService_Landing_NotFound(t *testing.T) {
	svc := NewAcademyService(&fakeRecordClient{}, "tblAcademyLanding", "tblAcademyCourses")

	_, err := svc.Landing(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAcademyService_Courses_AllPages(t *testing.T) {
	client := &fakeRecordClient{list: func(_ string, q domain.Query) (domain.Page, error) {
		switch q.Offset {
		case "":
			return domain.Page{
				Records: []domain.Record{record("recCourse00000001", domain.Fields{"Course Name": "Board Essentials"})},
				Offset:  "page2",
			}, nil
		case "page2":
			return domain.Page{
				Records: []domain.Record{record("recCourse00000002", domain.Fields{"Course Name": "Data for Leaders"})},
			}, nil
		}
		return domain.Page{}, fmt.Errorf("unexpected offset %q", q.Offset)
	}}
	svc := NewAcademyService(client, "tblAcademyLanding", "tblAcademyCourses")

	courses, err := svc.Courses(context.Background())
	require.NoError(t, err)

	require.Len(t, courses, 2)
	assert.Equal(t, "board-essentials", courses[0].Slug)
	assert.Equal(t, "data-for-leaders", courses[1].Slug)

	calls := client.listCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, CoursesPageSize, calls[0].query.PageSize)
	assert.Equal(t, []domain.Sort{{Field: "Display Order", Direction: domain.Asc}}, calls[0].query.Sort)
	assert.Equal(t, "{Status}='Published on Site'", calls[0].query.Filter)
}

func TestAcademyService_Courses_PageFailure(t *testing.T) {
	client := &fakeRecordClient{list: func(_ string, q domain.Query) (domain.Page, error) {
		if q.Offset == "" {
			return domain.Page{Records: []domain.Record{record("recCourse00000001", nil)}, Offset: "page2"}, nil
		}
		return domain.Page{}, errUpstream
	}}
	svc := NewAcademyService(client, "tblAcademyLanding", "tblAcademyCourses")

	courses, err := svc.Courses(context.Background())

	assert.ErrorIs(t, err, errUpstream)
	assert.Nil(t, courses)
}

func TestAcademyService_CourseBySlug(t *testing.T) {
	client := &fakeRecordClient{list: staticPage(record("recCourse00000001", domain.Fields{
		"Course Name": "Board Essentials",
		"Slug":        "board-essentials",
	}))}
	svc := NewAcademyService(client, "tblAcademyLanding", "tblAcademyCourses")

	course, err := svc.CourseBySlug(context.Background(), "board-essentials")
	require.NoError(t, err)

	assert.Equal(t, "Board Essentials", course.Name)
	assert.Equal(t, "AND({Status}='Published on Site',{Slug}='board-essentials')", client.listCalls()[0].query.Filter)
}

func TestAcademyService_CourseBySlug_Invalid(t *testing.T) {
	svc := NewAcademyService(&fakeRecordClient{}, "tblAcademyLanding", "tblAcademyCourses")

	_, err := svc.CourseBySlug(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
