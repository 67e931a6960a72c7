package domain

// AcademyLanding is the editable copy of the academy landing page.
type AcademyLanding struct {
	ID                string   `json:"id"`
	PageName          string   `json:"pageName,omitempty"`
	Slug              string   `json:"slug,omitempty"`
	Status            string   `json:"status,omitempty"`
	HeroHeading       string   `json:"heroHeading,omitempty"`
	HeroSubheading    string   `json:"heroSubheading,omitempty"`
	HeroIntro         string   `json:"heroIntro,omitempty"`
	HeroCTALabel      string   `json:"heroCtaLabel,omitempty"`
	HeroCTAURL        string   `json:"heroCtaUrl,omitempty"`
	IntroTitle        string   `json:"introTitle,omitempty"`
	IntroBody         string   `json:"introBody,omitempty"`
	AudienceSummary   string   `json:"audienceSummary,omitempty"`
	HighlightBullets  []string `json:"highlightBullets,omitempty"`
	FeaturedCourseIDs []string `json:"featuredCourseIds,omitempty"`
	HeroImageURL      string   `json:"heroImageUrl,omitempty"`
	SEOTitle          string   `json:"seoTitle,omitempty"`
	SEODescription    string   `json:"seoDescription,omitempty"`
}

// AcademyCourse is a course listed in the academy.
type AcademyCourse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Slug                   string   `json:"slug"`
	Status                 string   `json:"status,omitempty"`
	Category               string   `json:"category,omitempty"`
	CourseType             string   `json:"courseType,omitempty"`
	Level                  string   `json:"level,omitempty"`
	Tagline                string   `json:"tagline,omitempty"`
	ShortDescription       string   `json:"shortDescription,omitempty"`
	LongDescription        string   `json:"longDescription,omitempty"`
	KeyOutcomes            []string `json:"keyOutcomes,omitempty"`
	KeyTopics              []string `json:"keyTopics,omitempty"`
	IdealAudience          string   `json:"idealAudience,omitempty"`
	Duration               string   `json:"duration,omitempty"`
	DeliveryMode           string   `json:"deliveryMode,omitempty"`
	FormatDetails          string   `json:"formatDetails,omitempty"`
	Language               string   `json:"language,omitempty"`
	PrimaryRegion          string   `json:"primaryRegion,omitempty"`
	LeadInstructorIDs      []string `json:"leadInstructorIds,omitempty"`
	SupportingInstructorID []string `json:"supportingInstructorIds,omitempty"`
	ExternalURL            string   `json:"externalUrl,omitempty"`
	EnquiryEmail           string   `json:"enquiryEmail,omitempty"`
	PriceFrom              float64  `json:"priceFrom,omitempty"`
	Currency               string   `json:"currency,omitempty"`
	HeroImageURL           string   `json:"heroImageUrl,omitempty"`
	ThumbnailURL           string   `json:"thumbnailUrl,omitempty"`
	DisplayOrder           int      `json:"displayOrder,omitempty"`
	Featured               bool     `json:"featured"`
	Tags                   []string `json:"tags,omitempty"`
	SEOTitle               string   `json:"seoTitle,omitempty"`
	SEODescription         string   `json:"seoDescription,omitempty"`
}
