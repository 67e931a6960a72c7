package records

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

func TestVideo_MapsColumns(t *testing.T) {
	rec := domain.Record{ID: "recVID00000000001", Fields: domain.Fields{
		"Title":                "Leading Through Change",
		"Type":                 "Full Interview",
		"Aspect":               "16:9",
		"Platform":             "YouTube",
		"YouTube ID":           "dQw4w9WgXcQ",
		"Duration (sec)":       float64(1520),
		"Publish Date":         "2024-05-01",
		"Speaker Display Name": "Jane Doe",
		"Speaker Slug":         "jane-doe",
		"Speaker":              []any{"recSPK00000000001"},
		"Order":                float64(2),
		"Status":               "Published",
		"Featured":             true,
		"Topics":               []any{"Leadership", "Change"},
	}}

	v := Video(rec)
	assert.Equal(t, "recVID00000000001", v.ID)
	assert.Equal(t, domain.VideoFullInterview, v.Type)
	assert.Equal(t, domain.AspectLandscape, v.Aspect)
	assert.Equal(t, domain.PlatformYouTube, v.Platform)
	assert.Equal(t, 1520, v.DurationSec)
	assert.Equal(t, 2, v.Order)
	assert.Equal(t, "Jane Doe", v.SpeakerName)
	assert.Equal(t, "jane-doe", v.SpeakerSlug)
	assert.Equal(t, []string{"Leadership", "Change"}, v.Topics)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?modestbranding=1&playsinline=1&rel=0", v.EmbedURL)

	id, ok := v.SpeakerRef.ID()
	assert.True(t, ok)
	assert.Equal(t, "recSPK00000000001", id)
	assert.True(t, IsPublished(v))
}

func TestVideo_RecordIDNeverSurfaced(t *testing.T) {
	rec := domain.Record{ID: "recVID00000000002", Fields: domain.Fields{
		"Title":        "Highlights",
		"Speaker":      []any{rawID},
		"Speaker Name": rawID,
		"Speaker Slug": rawID,
	}}

	v := Video(rec)
	assert.Empty(t, v.SpeakerName)
	assert.Empty(t, v.SpeakerSlug)
	assert.True(t, v.SpeakerRef.IsResolved())
}

func TestVideo_SlugFromName(t *testing.T) {
	rec := domain.Record{ID: "recVID00000000003", Fields: domain.Fields{
		"Speaker Name": "Dr. Amahle M'Botu",
	}}

	v := Video(rec)
	assert.Equal(t, "Dr. Amahle M'Botu", v.SpeakerName)
	assert.Equal(t, "amahle-m-botu", v.SpeakerSlug)
	assert.False(t, v.SpeakerRef.IsResolved())
}

func TestVideo_FallbackIDIsStable(t *testing.T) {
	rec := domain.Record{Fields: domain.Fields{"Title": "Untitled", "Publish Date": "2024-01-01"}}

	first := Video(rec)
	second := Video(rec)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first, second)
}

func TestVideo_UnknownPlatform(t *testing.T) {
	v := Video(domain.Record{ID: "recVID00000000004", Fields: domain.Fields{"Platform": "Vimeo"}})
	assert.Equal(t, domain.PlatformOther, v.Platform)

	v = Video(domain.Record{ID: "recVID00000000005", Fields: domain.Fields{}})
	assert.Empty(t, v.Platform)
}

func TestIsPublished(t *testing.T) {
	assert.True(t, IsPublished(domain.Video{Status: "published"}))
	assert.True(t, IsPublished(domain.Video{Status: " PUBLISHED "}))
	assert.False(t, IsPublished(domain.Video{Status: "Draft"}))
	assert.False(t, IsPublished(domain.Video{}))
}
