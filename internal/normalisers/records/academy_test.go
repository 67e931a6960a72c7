package records

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

func TestAcademyCourse(t *testing.T) {
	c := AcademyCourse(domain.Record{ID: "recCRS00000000001", Fields: domain.Fields{
		"Course Name":               "Leading Hybrid Teams",
		"Key Outcomes":              "Run better meetings\nSet clear goals",
		"Price From":                float64(4500.5),
		"Display Order":             float64(3),
		"Lead Instructor (Speaker)": []any{"recSPK00000000001"},
		"Thumbnail Image": []any{
			map[string]any{"thumbnails": map[string]any{"large": map[string]any{"url": "https://cdn.example.com/t.jpg"}}},
		},
	}})

	assert.Equal(t, "leading-hybrid-teams", c.Slug)
	assert.Equal(t, []string{"Run better meetings", "Set clear goals"}, c.KeyOutcomes)
	assert.InDelta(t, 4500.5, c.PriceFrom, 0.001)
	assert.Equal(t, 3, c.DisplayOrder)
	assert.Equal(t, []string{"recSPK00000000001"}, c.LeadInstructorIDs)
	assert.Equal(t, "https://cdn.example.com/t.jpg", c.ThumbnailURL)
}

func TestAcademyLanding(t *testing.T) {
	l := AcademyLanding(domain.Record{ID: "recALP00000000001", Fields: domain.Fields{
		"Hero Heading":     "ASB Academy",
		"URL Slug":         "Academy",
		"Featured Courses": []any{"recCRS00000000001"},
	}})

	assert.Equal(t, "ASB Academy", l.HeroHeading)
	assert.Equal(t, "academy", l.Slug)
	assert.Equal(t, []string{"recCRS00000000001"}, l.FeaturedCourseIDs)
}
