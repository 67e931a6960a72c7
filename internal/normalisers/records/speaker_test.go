package records

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

const rawID = "recAbC123dEf456gHi"

func TestSpeaker_PrefersSlugOverride(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000001", Fields: domain.Fields{
		"Slug Override": "Jane-Doe",
		"Slug":          "jane-doe-old",
		"Full Name":     "Jane Doe",
		"Expertise Areas": []any{
			"Leadership", "Innovation",
		},
		"Profile Image": []any{
			map[string]any{"url": "https://cdn.example.com/jane.jpg"},
		},
		"Featured": true,
	}}

	s := Speaker(rec)
	assert.Equal(t, "jane-doe", s.Slug)
	assert.Equal(t, "Jane Doe", s.Name)
	assert.Equal(t, []string{"Leadership", "Innovation"}, s.ExpertiseAreas)
	assert.Equal(t, "https://cdn.example.com/jane.jpg", s.ProfileImageURL)
	assert.True(t, s.Featured)
}

func TestSpeaker_DerivesNameAndSlug(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000002", Fields: domain.Fields{
		"Title":      "Dr.",
		"First Name": "Amahle",
		"Last Name":  "M'Botu",
	}}

	s := Speaker(rec)
	assert.Equal(t, "Dr. Amahle M'Botu", s.Name)
	assert.Equal(t, "amahle-m-botu", s.Slug)
}

func TestSpeaker_SkipsRecordIDShapedValues(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000003", Fields: domain.Fields{
		"Slug Override": rawID,
		"Full Name":     rawID,
		"First Name":    "Kofi",
		"Last Name":     "Mensah",
	}}

	s := Speaker(rec)
	assert.Equal(t, "Kofi Mensah", s.Name)
	assert.Equal(t, "kofi-mensah", s.Slug)
}

func TestSpeaker_RecordIDShapedNameParts(t *testing.T) {
	tests := []struct {
		name     string
		fields   domain.Fields
		wantName string
		wantSlug string
	}{
		{
			name:     "linked first name only",
			fields:   domain.Fields{"First Name": []any{rawID}},
			wantName: "",
			wantSlug: "",
		},
		{
			name:     "linked first name beside real last name",
			fields:   domain.Fields{"First Name": rawID, "Last Name": "Mensah"},
			wantName: "Mensah",
			wantSlug: "mensah",
		},
		{
			name:     "linked title",
			fields:   domain.Fields{"Title": rawID, "First Name": "Kofi", "Last Name": "Mensah"},
			wantName: "Kofi Mensah",
			wantSlug: "kofi-mensah",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.Record{ID: "recSPK00000000009", Fields: tt.fields}

			s := Speaker(rec)
			assert.Equal(t, tt.wantName, s.Name)
			assert.Equal(t, tt.wantSlug, s.Slug)
			assert.False(t, domain.LooksLikeRecordID(s.Name))
			assert.NotEqual(t, rawID, s.FirstName)

			info := SpeakerInfo(rec)
			assert.Equal(t, tt.wantName, info.DisplayName)
			assert.NotEqual(t, rawID, info.FirstName)
		})
	}
}

func TestSpeakerInfo(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000004", Fields: domain.Fields{
		"Title":         "Prof",
		"First name":    "Ngozi",
		"Last name":     "Okafor",
		"Full Name":     "Ngozi Okafor",
		"Slug Override": "jane-doe",
	}}

	info := SpeakerInfo(rec)
	assert.Equal(t, "recSPK00000000004", info.ID)
	assert.Equal(t, "jane-doe", info.Slug)
	assert.Equal(t, "Prof Ngozi Okafor", info.DisplayName)
	assert.Equal(t, "Ngozi", info.FirstName)
	assert.Equal(t, "Okafor", info.LastName)
}

func TestSpeakerInfo_FallsBackToFullName(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000005", Fields: domain.Fields{
		"Name": "Thabo Nkosi",
	}}

	info := SpeakerInfo(rec)
	assert.Equal(t, "Thabo Nkosi", info.DisplayName)
	assert.Equal(t, "thabo-nkosi", info.Slug)
}

func TestSpeaker_Idempotent(t *testing.T) {
	rec := domain.Record{ID: "recSPK00000000006", Fields: domain.Fields{
		"Full Name": "Zoë Adébayo",
		"Languages": []any{"English", "Yoruba"},
	}}

	first := Speaker(rec)
	second := Speaker(rec)
	assert.Equal(t, first, second)
	assert.Equal(t, "zoe-adebayo", first.Slug)
}
