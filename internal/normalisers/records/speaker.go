package records

import (
	"strings"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// Speaker maps a speaker row.
func Speaker(rec domain.Record) domain.Speaker {
	f := rec.Fields
	title := safeString(f, FieldTitle)
	first := safeString(f, "First Name", "First name")
	last := safeString(f, "Last Name", "Last name")
	fullName := safeString(f, FieldFullName, FieldName)

	name := fullName
	if name == "" {
		name = domain.DisplayName(title, first, last)
	}

	return domain.Speaker{
		ID:                  rec.ID,
		Slug:                nameOrSlug(f, fullName, name),
		Name:                name,
		Title:               title,
		FirstName:           first,
		LastName:            last,
		ProfessionalTitle:   f.String("Professional Title"),
		Company:             f.String("Company", "Company / Organisation"),
		Country:             f.String("Country"),
		Location:            f.String("Location"),
		Bio:                 f.String("Professional Bio", "Bio"),
		NotableAchievements: f.String("Notable Achievements"),
		ExpertiseAreas:      f.Strings("Expertise Areas"),
		Languages:           f.Strings("Spoken Languages"),
		Industries:          f.Strings("Industries"),
		FeeRange:            f.String("Fee Range General"),
		ProfileImageURL:     f.FirstAttachmentURL("Profile Image"),
		Featured:            f.Bool("Featured"),
		Status:              f.String(FieldStatus),
	}
}

// SpeakerInfo maps a speaker row onto a lookup cache entry. The display name
// prefers title, first and last name over the full-name column.
func SpeakerInfo(rec domain.Record) domain.SpeakerInfo {
	f := rec.Fields
	title := safeString(f, FieldTitle)
	first := safeString(f, "First Name", "First name")
	last := safeString(f, "Last Name", "Last name")
	fullName := safeString(f, FieldFullName, FieldName)

	display := domain.SafeName(domain.DisplayName(title, first, last))
	if display == "" {
		display = fullName
	}

	return domain.SpeakerInfo{
		ID:          rec.ID,
		Slug:        nameOrSlug(f, fullName, display),
		DisplayName: display,
		Title:       title,
		FirstName:   first,
		LastName:    last,
	}
}

// SpeakerIsPublished reports whether a speaker row is shown on the site. The
// speakers table uses both the site-wide status and a bare "Published".
func SpeakerIsPublished(s domain.Speaker) bool {
	status := strings.TrimSpace(s.Status)
	return strings.EqualFold(status, domain.StatusPublished) || strings.EqualFold(status, "published")
}
