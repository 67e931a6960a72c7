package domain

import (
	"errors"
	"time"
)

// Settings is the resolved configuration of the site's data service.
type Settings struct {
	Airtable AirtableSettings `json:"airtable"`
	Tables   TableSettings    `json:"tables"`
	Server   ServerSettings   `json:"server"`

	// WhatsAppPhone is the number behind the site's WhatsApp links.
	WhatsAppPhone string `json:"whatsappPhone"`

	// LookupCacheTTL time-boxes cached speaker lookups. Zero keeps them for
	// the life of the process.
	LookupCacheTTL time.Duration `json:"lookupCacheTtl"`
}

// AirtableSettings configures access to the record service.
type AirtableSettings struct {
	APIURL            string        `json:"apiUrl"`
	BaseID            string        `json:"baseId"`
	APIKey            string        `json:"-"`
	Timeout           time.Duration `json:"timeout"`
	MaxRetries        int           `json:"maxRetries"`
	RequestsPerSecond float64       `json:"requestsPerSecond"`
}

// TableSettings names the tables each service reads or writes. Values may be
// table names or table IDs ("tblXXXXXXXXXXXXXX").
type TableSettings struct {
	Videos                 string `json:"videos"`
	Speakers               string `json:"speakers"`
	SpeakerLookup          string `json:"speakerLookup"`
	ConsultantsLanding     string `json:"consultantsLanding"`
	Consultants            string `json:"consultants"`
	AcademyLanding         string `json:"academyLanding"`
	AcademyCourses         string `json:"academyCourses"`
	Campaigns              string `json:"campaigns"`
	CampaignSpeakers       string `json:"campaignSpeakers"`
	ClientInquiries        string `json:"clientInquiries"`
	ConsultantApplications string `json:"consultantApplications"`
}

// ServerSettings configures the HTTP surface.
type ServerSettings struct {
	ListenAddr string `json:"listenAddr"`

	// DraftsDB is the directory of the application drafts database.
	// Empty keeps drafts in memory.
	DraftsDB string `json:"draftsDb,omitempty"`
}

// DefaultTableSettings returns the production table names.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		Videos:                 "Videos",
		Speakers:               "Speakers",
		SpeakerLookup:          "Speaker Applications",
		ConsultantsLanding:     "tblRBiWBoD95w2OEG",
		Consultants:            "tbltBNmJvC8vnvsHv",
		AcademyLanding:         "tblIRvDYqMNKINGbS",
		AcademyCourses:         "tbly4oVTQvrn1Oh7g",
		Campaigns:              "Campaigns",
		CampaignSpeakers:       "Campaign Speakers",
		ClientInquiries:        "Client Inquiries",
		ConsultantApplications: "tbltBNmJvC8vnvsHv",
	}
}

// DefaultSettings returns settings with every optional value filled in.
// Credentials have no default.
func DefaultSettings() Settings {
	return Settings{
		Airtable: AirtableSettings{
			APIURL:            "https://api.airtable.com",
			Timeout:           30 * time.Second,
			MaxRetries:        3,
			RequestsPerSecond: 5,
		},
		Tables: DefaultTableSettings(),
		Server: ServerSettings{
			ListenAddr: ":8080",
		},
		WhatsAppPhone: "+27674842001",
	}
}

// Validate reports settings the record service cannot work without.
// Missing credentials wrap ErrMissingConfig.
func (s Settings) Validate() error {
	var errs []error
	if s.Airtable.BaseID == "" {
		errs = append(errs, errors.New("airtable base id is not set"))
	}
	if s.Airtable.APIKey == "" {
		errs = append(errs, errors.New("airtable api key is not set"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrMissingConfig}, errs...)...)
	}
	if s.Airtable.Timeout < 0 || s.Airtable.MaxRetries < 0 || s.LookupCacheTTL < 0 {
		return errors.Join(ErrInvalidInput, errors.New("durations and retry counts must not be negative"))
	}
	return nil
}
