package records

import "github.com/custodia-labs/asb-site/internal/core/domain"

// AcademyLanding maps the academy landing page row.
func AcademyLanding(rec domain.Record) domain.AcademyLanding {
	f := rec.Fields
	return domain.AcademyLanding{
		ID:                rec.ID,
		PageName:          f.String("Page Name"),
		Slug:              domain.SafeSlug(f.String("URL Slug")),
		Status:            f.String(FieldStatus),
		HeroHeading:       f.String("Hero Heading"),
		HeroSubheading:    f.String("Hero Subheading"),
		HeroIntro:         f.String("Hero Intro Text"),
		HeroCTALabel:      f.String("Hero CTA Label"),
		HeroCTAURL:        f.String("Hero CTA URL"),
		IntroTitle:        f.String("Intro Section Title"),
		IntroBody:         f.String("Intro Section Body"),
		AudienceSummary:   f.String("Audience Summary"),
		HighlightBullets:  lines(f.String("Highlight Bullets")),
		FeaturedCourseIDs: recordIDs(f, "Featured Courses"),
		HeroImageURL:      f.FirstAttachmentURL("Hero Image"),
		SEOTitle:          f.String(FieldSEOTitle),
		SEODescription:    f.String(FieldSEODescription),
	}
}

// AcademyCourse maps a course row.
func AcademyCourse(rec domain.Record) domain.AcademyCourse {
	f := rec.Fields
	name := safeString(f, "Course Name")
	price, _ := f.Float("Price From")
	order, _ := f.Int("Display Order")

	slug := explicitSlug(f)
	if slug == "" {
		slug = domain.Slugify(name)
	}

	return domain.AcademyCourse{
		ID:                     rec.ID,
		Name:                   name,
		Slug:                   slug,
		Status:                 f.String(FieldStatus),
		Category:               f.String("Category"),
		CourseType:             f.String("Course Type"),
		Level:                  f.String("Level"),
		Tagline:                f.String("Short Tagline"),
		ShortDescription:       f.String("Short Description"),
		LongDescription:        f.String("Long Description"),
		KeyOutcomes:            lines(f.String("Key Outcomes")),
		KeyTopics:              lines(f.String("Key Topics")),
		IdealAudience:          f.String("Ideal Audience"),
		Duration:               f.String("Duration"),
		DeliveryMode:           f.String("Delivery Mode"),
		FormatDetails:          f.String("Format Details"),
		Language:               f.String("Language"),
		PrimaryRegion:          f.String("Primary Region"),
		LeadInstructorIDs:      recordIDs(f, "Lead Instructor (Speaker)"),
		SupportingInstructorID: recordIDs(f, "Supporting Instructors"),
		ExternalURL:            f.String("External Course URL"),
		EnquiryEmail:           f.String("External Enquiry Email"),
		PriceFrom:              price,
		Currency:               f.String("Currency"),
		HeroImageURL:           f.FirstAttachmentURL("Hero Image"),
		ThumbnailURL:           f.FirstAttachmentURL("Thumbnail Image"),
		DisplayOrder:           order,
		Featured:               f.Bool("Featured on Academy"),
		Tags:                   f.Strings("Tags"),
		SEOTitle:               f.String(FieldSEOTitle),
		SEODescription:         f.String(FieldSEODescription),
	}
}
