package domain

// StatusPublished is the status value of rows shown on the public site.
const StatusPublished = "Published on Site"

// Consultant is a public consultant profile.
type Consultant struct {
	ID                      string       `json:"id"`
	Slug                    string       `json:"slug"`
	FullName                string       `json:"fullName"`
	FirstName               string       `json:"firstName,omitempty"`
	LastName                string       `json:"lastName,omitempty"`
	Status                  string       `json:"status,omitempty"`
	ProfessionalTitle       string       `json:"professionalTitle,omitempty"`
	Company                 string       `json:"company,omitempty"`
	Location                string       `json:"location,omitempty"`
	Country                 string       `json:"country,omitempty"`
	WorksAcrossRegions      []string     `json:"worksAcrossRegions,omitempty"`
	TypicalEngagementLength string       `json:"typicalEngagementLength,omitempty"`
	AvailabilityBadge       string       `json:"availabilityBadge,omitempty"`
	ModeBadge               string       `json:"modeBadge,omitempty"`
	PositioningBadge        string       `json:"positioningBadge,omitempty"`
	YearsConsulting         int          `json:"yearsConsulting,omitempty"`
	CountriesWorked         int          `json:"countriesWorked,omitempty"`
	FlagshipOutcome         string       `json:"flagshipOutcome,omitempty"`
	FeeRangeGeneral         string       `json:"feeRangeGeneral,omitempty"`
	DayRateLocal            string       `json:"dayRateLocal,omitempty"`
	DayRateCurrency         string       `json:"dayRateCurrency,omitempty"`
	TravelRegions           []string     `json:"travelRegions,omitempty"`
	IdealAudience           []string     `json:"idealAudience,omitempty"`
	ContextTags             []string     `json:"contextTags,omitempty"`
	AvailabilityWindow      string       `json:"availabilityWindow,omitempty"`
	AvailabilityNotes       string       `json:"availabilityNotes,omitempty"`
	About                   string       `json:"about,omitempty"`
	ExpertiseAreas          []string     `json:"expertiseAreas,omitempty"`
	Industries              []string     `json:"industries,omitempty"`
	ToolsMethods            []string     `json:"toolsMethods,omitempty"`
	ServicesOverview        string       `json:"servicesOverview,omitempty"`
	CaseStudiesSummary      string       `json:"caseStudiesSummary,omitempty"`
	ProfileImageURL         string       `json:"profileImageUrl,omitempty"`
	HeroImageURL            string       `json:"heroImageUrl,omitempty"`
	HeroVideoURL            string       `json:"heroVideoUrl,omitempty"`
	HeroVideoEmbedURL       string       `json:"heroVideoEmbedUrl,omitempty"`
	Documents               []Attachment `json:"documents,omitempty"`
	RelatedVideoIDs         []string     `json:"relatedVideoIds,omitempty"`
	Featured                bool         `json:"featured"`
	DirectoryOrder          int          `json:"directoryOrder,omitempty"`
	SEOTitle                string       `json:"seoTitle,omitempty"`
	SEODescription          string       `json:"seoDescription,omitempty"`
}

// ConsultantsLanding is the editable copy of the consultants landing page.
type ConsultantsLanding struct {
	ID                    string   `json:"id"`
	PageName              string   `json:"pageName,omitempty"`
	Slug                  string   `json:"slug,omitempty"`
	Status                string   `json:"status,omitempty"`
	HeroHeading           string   `json:"heroHeading,omitempty"`
	HeroSubheading        string   `json:"heroSubheading,omitempty"`
	HeroIntro             string   `json:"heroIntro,omitempty"`
	PrimaryCTALabel       string   `json:"primaryCtaLabel,omitempty"`
	PrimaryCTATarget      string   `json:"primaryCtaTarget,omitempty"`
	SecondaryCTALabel     string   `json:"secondaryCtaLabel,omitempty"`
	SecondaryCTAURL       string   `json:"secondaryCtaUrl,omitempty"`
	HighlightBullets      []string `json:"highlightBullets,omitempty"`
	FeaturedConsultantIDs []string `json:"featuredConsultantIds,omitempty"`
	HeroImageURL          string   `json:"heroImageUrl,omitempty"`
	HeroVideoURL          string   `json:"heroVideoUrl,omitempty"`
	SEOTitle              string   `json:"seoTitle,omitempty"`
	SEODescription        string   `json:"seoDescription,omitempty"`
	LastUpdated           string   `json:"lastUpdated,omitempty"`
}

// ConsultantFilter narrows the consultants directory.
type ConsultantFilter struct {
	Search       string
	Country      string
	Availability string
	FeeBand      string
	Offset       string
}

// ConsultantPage is one page of the consultants directory.
type ConsultantPage struct {
	Consultants []Consultant `json:"consultants"`
	Offset      string       `json:"offset,omitempty"`
}
