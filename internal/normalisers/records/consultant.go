package records

import (
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/links"
)

// Consultant maps a consultant directory row.
func Consultant(rec domain.Record) domain.Consultant {
	f := rec.Fields
	first := safeString(f, "First Name")
	last := safeString(f, "Last Name")

	fullName := safeString(f, FieldFullName)
	if fullName == "" {
		fullName = domain.DisplayName(first, last)
	}

	years, _ := f.Int("Years Consulting")
	countries, _ := f.Int("Countries Worked")
	order, _ := f.Int("Directory Order")
	heroVideo := f.String("Hero Video URL")

	var documents []domain.Attachment
	for _, key := range []string{"CV Attachment", "Case Pack Attachment", "Other Documents"} {
		documents = append(documents, f.Attachments(key)...)
	}

	return domain.Consultant{
		ID:                      rec.ID,
		Slug:                    nameOrSlug(f, fullName),
		FullName:                fullName,
		FirstName:               first,
		LastName:                last,
		Status:                  f.String(FieldStatus),
		ProfessionalTitle:       f.String("Professional Title"),
		Company:                 f.String("Company / Firm"),
		Location:                f.String("Location"),
		Country:                 f.String("Country"),
		WorksAcrossRegions:      f.Strings("Works Across Regions"),
		TypicalEngagementLength: f.String("Typical Engagement Length"),
		AvailabilityBadge:       f.String("Availability Badge"),
		ModeBadge:               f.String("Mode Badge"),
		PositioningBadge:        f.String("Positioning Badge"),
		YearsConsulting:         years,
		CountriesWorked:         countries,
		FlagshipOutcome:         f.String("Flagship Outcome"),
		FeeRangeGeneral:         f.String("Fee Range General"),
		DayRateLocal:            f.String("Consulting Day Rate Local"),
		DayRateCurrency:         f.String("Consulting Day Rate Currency"),
		TravelRegions:           f.Strings("Travel Regions"),
		IdealAudience:           f.Strings("Ideal Audience"),
		ContextTags:             f.Strings("Context Tags"),
		AvailabilityWindow:      f.String("Availability Window"),
		AvailabilityNotes:       f.String("Availability Notes"),
		About:                   f.String("About"),
		ExpertiseAreas:          f.Strings("Expertise Areas"),
		Industries:              f.Strings("Industries"),
		ToolsMethods:            f.Strings("Tools & Methods"),
		ServicesOverview:        f.String("Services Overview"),
		CaseStudiesSummary:      f.String("Case Studies Summary"),
		ProfileImageURL:         f.FirstAttachmentURL("Profile Image"),
		HeroImageURL:            f.FirstAttachmentURL("Hero Image"),
		HeroVideoURL:            heroVideo,
		HeroVideoEmbedURL:       links.EmbedFriendly(heroVideo),
		Documents:               documents,
		RelatedVideoIDs:         recordIDs(f, "Related Videos"),
		Featured:                f.Bool("Featured on Consultants"),
		DirectoryOrder:          order,
		SEOTitle:                f.String(FieldSEOTitle),
		SEODescription:          f.String(FieldSEODescription),
	}
}

// ConsultantsLanding maps the consultants landing page row.
func ConsultantsLanding(rec domain.Record) domain.ConsultantsLanding {
	f := rec.Fields
	return domain.ConsultantsLanding{
		ID:                    rec.ID,
		PageName:              f.String("Page Name"),
		Slug:                  domain.SafeSlug(f.String("URL Slug")),
		Status:                f.String(FieldStatus),
		HeroHeading:           f.String("Hero Heading"),
		HeroSubheading:        f.String("Hero Subheading"),
		HeroIntro:             f.String("Hero Intro Text"),
		PrimaryCTALabel:       f.String("Hero Primary CTA Label"),
		PrimaryCTATarget:      f.String("Hero Primary CTA Target"),
		SecondaryCTALabel:     f.String("Hero Secondary CTA Label"),
		SecondaryCTAURL:       f.String("Hero Secondary CTA URL"),
		HighlightBullets:      lines(f.String("Highlight Bullets")),
		FeaturedConsultantIDs: recordIDs(f, "Featured Consultants"),
		HeroImageURL:          f.FirstAttachmentURL("Hero Image"),
		HeroVideoURL:          links.EmbedFriendly(f.String("Hero Video URL")),
		SEOTitle:              f.String(FieldSEOTitle),
		SEODescription:        f.String(FieldSEODescription),
		LastUpdated:           f.String("Last Updated"),
	}
}
