package domain

// Speaker is a public speaker profile.
type Speaker struct {
	ID                  string   `json:"id"`
	Slug                string   `json:"slug"`
	Name                string   `json:"name"`
	Title               string   `json:"title,omitempty"`
	FirstName           string   `json:"firstName,omitempty"`
	LastName            string   `json:"lastName,omitempty"`
	ProfessionalTitle   string   `json:"professionalTitle,omitempty"`
	Company             string   `json:"company,omitempty"`
	Country             string   `json:"country,omitempty"`
	Location            string   `json:"location,omitempty"`
	Bio                 string   `json:"bio,omitempty"`
	NotableAchievements string   `json:"notableAchievements,omitempty"`
	ExpertiseAreas      []string `json:"expertiseAreas,omitempty"`
	Languages           []string `json:"languages,omitempty"`
	Industries          []string `json:"industries,omitempty"`
	FeeRange            string   `json:"feeRange,omitempty"`
	ProfileImageURL     string   `json:"profileImageUrl,omitempty"`
	Featured            bool     `json:"featured"`
	Status              string   `json:"status,omitempty"`
}

// SpeakerInfo is the lightweight lookup entry the cross-reference resolver
// caches per speaker record identifier.
type SpeakerInfo struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Title       string `json:"title,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
}
