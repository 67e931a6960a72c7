package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Jane Doe", "jane-doe"},
		{"punctuation runs", "Jane -- Doe!!", "jane-doe"},
		{"leading and trailing junk", "  ...Jane Doe...  ", "jane-doe"},
		{"apostrophe", "Amahle M'Botu", "amahle-m-botu"},
		{"diacritics", "Zoë Nkosí-Ébo", "zoe-nkosi-ebo"},
		{"latin letters without decomposition", "Søren Straße Łukasz", "soren-strasse-lukasz"},
		{"other scripts dropped", "Кофи Менса", ""},
		{"mixed scripts keep latin", "王 Wei Chen", "wei-chen"},
		{"digits kept", "Speaker 2024", "speaker-2024"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"already a slug", "jane-doe", "jane-doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_ShapeAndIdempotence(t *testing.T) {
	inputs := []string{
		"Dr. Amahle M'Botu",
		"PROF  Kwame   Mensah, PhD",
		"Ms.Lerato (Lee) van der Merwe",
		"Éloïse d'Almeida",
		"--already--slugged--",
		"O'Neil & Sons / Consulting",
		"Ngozi Okonjo-Iweala",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := Slugify(in)
			assert.Regexp(t, slugShape, got)
			assert.Equal(t, got, Slugify(got), "slugify must be idempotent")

			person := PersonSlug(in)
			assert.Regexp(t, slugShape, person)
			assert.Equal(t, person, Slugify(person))
		})
	}
}

func TestPersonSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Dr. Amahle M'Botu", "amahle-m-botu"},
		{"dr amahle m'botu", "amahle-m-botu"},
		{"Prof Kwame Mensah", "kwame-mensah"},
		{"Mrs. Thandi Khumalo", "thandi-khumalo"},
		{"Drake Mabaso", "drake-mabaso"},
		{"Miss", "miss"},
		{"Jane Doe", "jane-doe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, PersonSlug(tt.input))
		})
	}
}

func TestLooksLikeRecordID(t *testing.T) {
	assert.True(t, LooksLikeRecordID("recA1b2C3d4E5f6G7h"))
	assert.True(t, LooksLikeRecordID("tbltBNmJvC8vnvsHv"))
	assert.True(t, LooksLikeRecordID(" recA1b2C3d4E5f6G7h "))
	assert.False(t, LooksLikeRecordID("jane-doe"))
	assert.False(t, LooksLikeRecordID("Jane Doe"))
	assert.False(t, LooksLikeRecordID("rec123"))
	assert.False(t, LooksLikeRecordID("12cA1b2C3d4E5f6G7h"))
	assert.False(t, LooksLikeRecordID(""))
}

func TestSafeName_AndSafeSlug_RejectRecordIDs(t *testing.T) {
	id := "recA1b2C3d4E5f6G7h"

	assert.Empty(t, SafeName(id))
	assert.Empty(t, SafeSlug(id))
	assert.Equal(t, "Jane Doe", SafeName("  Jane Doe "))
	assert.Equal(t, "jane-doe", SafeSlug("Jane Doe"))
	assert.Empty(t, SafeSlug("   "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Dr Jane Doe", DisplayName("Dr", "Jane", "Doe"))
	assert.Equal(t, "Jane Doe", DisplayName("", "Jane", "Doe"))
	assert.Equal(t, "Jane Doe", DisplayName("  ", " Jane  ", "Doe "))
	assert.Equal(t, "Mary Ann Doe", DisplayName("", "Mary   Ann", "Doe"))
	assert.Empty(t, DisplayName("", "", ""))
}
