package domain

import "time"

// BookingInquiry is a "book a speaker" request from a client.
type BookingInquiry struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone,omitempty"`
	CompanyName            string `json:"companyName,omitempty"`
	JobTitle               string `json:"jobTitle,omitempty"`
	CompanySize            string `json:"companySize,omitempty"`
	Industry               string `json:"industry,omitempty"`
	Website                string `json:"website,omitempty"`
	EventName              string `json:"eventName,omitempty"`
	EventDate              string `json:"eventDate,omitempty"`
	EventLocation          string `json:"eventLocation,omitempty"`
	AudienceSize           string `json:"audienceSize,omitempty"`
	Topic                  string `json:"topic,omitempty"`
	PreferredSpeakers      string `json:"preferredSpeakers,omitempty"`
	FocusArea              string `json:"focusArea,omitempty"`
	Format                 string `json:"format,omitempty"`
	Budget                 string `json:"budget,omitempty"`
	PresentationFormat     string `json:"presentationFormat,omitempty"`
	AdditionalRequirements string `json:"requirements,omitempty"`
}

// ConsultantApplication is a consultant's self-submitted profile.
type ConsultantApplication struct {
	FirstName               string       `json:"firstName"`
	LastName                string       `json:"lastName"`
	Email                   string       `json:"emailAddress"`
	Phone                   string       `json:"phoneNumber,omitempty"`
	ProfessionalTitle       string       `json:"professionalTitle,omitempty"`
	Company                 string       `json:"company,omitempty"`
	Country                 string       `json:"country,omitempty"`
	Location                string       `json:"location,omitempty"`
	WorksAcrossRegions      []string     `json:"worksAcrossRegions,omitempty"`
	ProfileImage            []Attachment `json:"profileImage,omitempty"`
	About                   string       `json:"about,omitempty"`
	YearsConsulting         string       `json:"yearsConsulting,omitempty"`
	CountriesWorked         string       `json:"countriesWorked,omitempty"`
	FlagshipOutcome         string       `json:"flagshipOutcome,omitempty"`
	PositioningBadge        string       `json:"positioningBadge,omitempty"`
	AvailabilityBadge       string       `json:"availabilityBadge,omitempty"`
	ModeBadge               string       `json:"modeBadge,omitempty"`
	TypicalEngagementLength string       `json:"typicalEngagementLength,omitempty"`
	ExpertiseAreas          []string     `json:"expertiseAreas,omitempty"`
	Industries              []string     `json:"industries,omitempty"`
	ContextTags             []string     `json:"contextTags,omitempty"`
	IdealAudience           []string     `json:"idealAudience,omitempty"`
	ToolsMethods            []string     `json:"toolsMethods,omitempty"`
	TravelRegions           []string     `json:"travelRegions,omitempty"`
	AvailabilityWindow      string       `json:"availabilityWindow,omitempty"`
	AvailabilityNotes       string       `json:"availabilityNotes,omitempty"`
	FeeRangeGeneral         string       `json:"feeRangeGeneral,omitempty"`
	DayRateLocal            string       `json:"consultingDayRateLocal,omitempty"`
	DayRateCurrency         string       `json:"consultingDayRateCurrency,omitempty"`
	HeroImage               []Attachment `json:"heroImage,omitempty"`
	HeroVideoURL            string       `json:"heroVideoUrl,omitempty"`
	CVAttachment            []Attachment `json:"cvAttachment,omitempty"`
	CasePackAttachment      []Attachment `json:"casePackAttachment,omitempty"`
	OtherDocuments          []Attachment `json:"otherDocuments,omitempty"`
	Website                 string       `json:"website,omitempty"`
	LinkedInURL             string       `json:"linkedinUrl,omitempty"`
	ApplicationNotes        string       `json:"applicationNotes,omitempty"`
}

// ApplicationDraft is a saved, not yet submitted consultant application.
type ApplicationDraft struct {
	ID          string                `json:"id"`
	Application ConsultantApplication `json:"application"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// Submission is the receipt of a lead written to the record service.
type Submission struct {
	RecordID string `json:"recordId"`
	Slug     string `json:"slug,omitempty"`
}
