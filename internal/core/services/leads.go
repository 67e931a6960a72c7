package services

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

const (
	// InquiryStatusNew is the status of a fresh booking inquiry.
	InquiryStatusNew = "New"

	// ApplicationStatusDraft is the status of a submitted consultant application.
	ApplicationStatusDraft = "Draft"

	// ApplicationSourceDefault records where an application came from.
	ApplicationSourceDefault = "Web - Join as Consultant"

	slugCheckPageSize = 50
	requiredMessage   = "This field is required"
)

// Ensure LeadService implements the interface.
var _ driving.LeadService = (*LeadService)(nil)

// LeadService writes lead-capture submissions and keeps application drafts.
type LeadService struct {
	client            driven.RecordClient
	drafts            driven.DraftStore
	inquiriesTable    string
	applicationsTable string
	now               func() time.Time
}

// NewLeadService creates a new lead service. drafts may be nil, in which
// case draft operations return domain.ErrNotImplemented.
func NewLeadService(client driven.RecordClient, drafts driven.DraftStore, inquiriesTable, applicationsTable string) *LeadService {
	return &LeadService{
		client:            client,
		drafts:            drafts,
		inquiriesTable:    inquiriesTable,
		applicationsTable: applicationsTable,
		now:               time.Now,
	}
}

// SubmitBooking records a booking inquiry with status New. Select-type
// answers left blank are omitted so the service does not reject them.
func (s *LeadService) SubmitBooking(ctx context.Context, in domain.BookingInquiry) (*domain.Submission, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	missing := map[string]string{}
	requireField(missing, "firstName", in.FirstName)
	requireField(missing, "lastName", in.LastName)
	requireEmail(missing, "email", in.Email)
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	fields := map[string]any{
		"First Name":              strings.TrimSpace(in.FirstName),
		"Last Name":               strings.TrimSpace(in.LastName),
		"Email":                   strings.TrimSpace(in.Email),
		"Phone":                   in.Phone,
		"Company Name":            in.CompanyName,
		"Job Title":               in.JobTitle,
		"Company Website":         in.Website,
		"Event Name":              in.EventName,
		"Event Date":              in.EventDate,
		"Event Location":          in.EventLocation,
		"Speaking Topic":          in.Topic,
		"Preferred Speakers":      in.PreferredSpeakers,
		"Additional Requirements": in.AdditionalRequirements,
		records.FieldStatus:       InquiryStatusNew,
	}
	optional := map[string]string{
		"Company Size":        in.CompanySize,
		"Industry":            in.Industry,
		"Audience Size":       in.AudienceSize,
		"Focus Area":          in.FocusArea,
		"Format":              in.Format,
		"Budget Range":        in.Budget,
		"Presentation Format": in.PresentationFormat,
	}
	for key, value := range optional {
		if value = strings.TrimSpace(value); value != "" {
			fields[key] = value
		}
	}

	rec, err := s.client.Create(ctx, s.inquiriesTable, fields)
	if err != nil {
		return nil, fmt.Errorf("submit booking inquiry: %w", err)
	}

	logger.Info("booking inquiry %s recorded", rec.ID)
	return &domain.Submission{RecordID: rec.ID}, nil
}

// SubmitConsultantApplication validates app, reserves a unique slug and
// writes the application. On failure nothing is deleted, so a saved draft
// can be submitted again.
func (s *LeadService) SubmitConsultantApplication(
	ctx context.Context,
	app domain.ConsultantApplication,
	draftID string,
) (*domain.Submission, error) {
	if s.client == nil {
		return nil, domain.ErrNotImplemented
	}

	missing := map[string]string{}
	requireField(missing, "firstName", app.FirstName)
	requireField(missing, "lastName", app.LastName)
	requireEmail(missing, "emailAddress", app.Email)
	requireField(missing, "country", app.Country)
	requireField(missing, "professionalTitle", app.ProfessionalTitle)
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	base := domain.Slugify(app.FirstName + " " + app.LastName)
	if base == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"firstName": "Unable to generate slug. Please add your name.",
		}}
	}
	slug := s.uniqueSlug(ctx, base+"-consultant")

	fields := applicationFields(app)
	fields["Application Source"] = ApplicationSourceDefault
	fields[records.FieldStatus] = ApplicationStatusDraft
	fields[records.FieldSlug] = slug

	rec, err := s.client.Create(ctx, s.applicationsTable, sanitize(fields))
	if err != nil {
		return nil, fmt.Errorf("submit consultant application: %w", err)
	}
	logger.Info("consultant application %s recorded as %s", rec.ID, slug)

	if draftID != "" && s.drafts != nil {
		if err := s.drafts.Delete(ctx, draftID); err != nil {
			logger.Warn("failed to remove draft %s: %v", draftID, err)
		}
	}

	return &domain.Submission{RecordID: rec.ID, Slug: slug}, nil
}

// uniqueSlug returns base, or base-N for the smallest N >= 2 not already
// taken. If existing slugs cannot be read, base is returned.
func (s *LeadService) uniqueSlug(ctx context.Context, base string) string {
	rows, err := s.client.ListAll(ctx, s.applicationsTable, domain.Query{
		Filter:   fmt.Sprintf("REGEX_MATCH(LOWER({%s}), '^%s')", records.FieldSlug, airtable.Escape(base)),
		Fields:   []string{records.FieldSlug},
		PageSize: slugCheckPageSize,
	})
	if err != nil {
		logger.Warn("slug check failed, using %s: %v", base, err)
		return base
	}

	taken := make(map[string]struct{}, len(rows))
	for _, rec := range rows {
		if slug := strings.ToLower(rec.Fields.String(records.FieldSlug)); slug != "" {
			taken[slug] = struct{}{}
		}
	}

	candidate := base
	for n := 2; ; n++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}

// SaveDraft stores a draft, assigning an ID on first save.
func (s *LeadService) SaveDraft(ctx context.Context, draft domain.ApplicationDraft) (*domain.ApplicationDraft, error) {
	if s.drafts == nil {
		return nil, domain.ErrNotImplemented
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	draft.UpdatedAt = s.now().UTC()

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return &draft, nil
}

// GetDraft returns a saved draft.
func (s *LeadService) GetDraft(ctx context.Context, id string) (*domain.ApplicationDraft, error) {
	if s.drafts == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.drafts.Get(ctx, id)
}

// DeleteDraft removes a saved draft.
func (s *LeadService) DeleteDraft(ctx context.Context, id string) error {
	if s.drafts == nil {
		return domain.ErrNotImplemented
	}
	return s.drafts.Delete(ctx, id)
}

func applicationFields(app domain.ConsultantApplication) map[string]any {
	return map[string]any{
		"First Name":                   app.FirstName,
		"Last Name":                    app.LastName,
		"Professional Title":           app.ProfessionalTitle,
		"Company / Firm":               app.Company,
		"Email Address":                app.Email,
		"Phone Number":                 app.Phone,
		"Country":                      app.Country,
		"Location":                     app.Location,
		"Works Across Regions":         app.WorksAcrossRegions,
		"Profile Image":                attachmentFields(app.ProfileImage),
		"About":                        app.About,
		"Years Consulting":             number(app.YearsConsulting),
		"Countries Worked":             number(app.CountriesWorked),
		"Flagship Outcome":             app.FlagshipOutcome,
		"Positioning Badge":            app.PositioningBadge,
		"Availability Badge":           app.AvailabilityBadge,
		"Mode Badge":                   app.ModeBadge,
		"Typical Engagement Length":    app.TypicalEngagementLength,
		"Expertise Areas":              app.ExpertiseAreas,
		"Industries":                   app.Industries,
		"Context Tags":                 app.ContextTags,
		"Ideal Audience":               app.IdealAudience,
		"Tools & Methods":              app.ToolsMethods,
		"Travel Regions":               app.TravelRegions,
		"Availability Window":          app.AvailabilityWindow,
		"Availability Notes":           app.AvailabilityNotes,
		"Fee Range General":            app.FeeRangeGeneral,
		"Consulting Day Rate Local":    app.DayRateLocal,
		"Consulting Day Rate Currency": app.DayRateCurrency,
		"Hero Image":                   attachmentFields(app.HeroImage),
		"Hero Video URL":               app.HeroVideoURL,
		"CV Attachment":                attachmentFields(app.CVAttachment),
		"Case Pack Attachment":         attachmentFields(app.CasePackAttachment),
		"Other Documents":              attachmentFields(app.OtherDocuments),
		"Website":                      app.Website,
		"LinkedIn URL":                 app.LinkedInURL,
		"Application Notes (internal)": app.ApplicationNotes,
	}
}

// attachmentFields converts uploaded files to the service's attachment
// payload, which accepts a URL and an optional filename.
func attachmentFields(files []domain.Attachment) []map[string]any {
	var out []map[string]any
	for _, f := range files {
		if f.URL == "" {
			continue
		}
		item := map[string]any{"url": f.URL}
		if f.Filename != "" {
			item["filename"] = f.Filename
		}
		out = append(out, item)
	}
	return out
}

// number parses a numeric answer. Blank or invalid answers yield nil.
func number(s string) any {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return n
}

// sanitize drops nil values, blank strings and empty lists.
func sanitize(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
		case []string:
			if len(v) == 0 {
				continue
			}
		case []map[string]any:
			if len(v) == 0 {
				continue
			}
		}
		out[key] = value
	}
	return out
}

func requireField(missing map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		missing[name] = requiredMessage
	}
}

func requireEmail(missing map[string]string, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		missing[name] = requiredMessage
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		missing[name] = "Enter a valid email address"
	}
}
