package domain

// CampaignStatusLive is the status of campaigns served as microsites.
const CampaignStatusLive = "Live"

// Campaign is a country-specific speaker pack microsite.
type Campaign struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Country         string `json:"country,omitempty"`
	HeroHeadline    string `json:"heroHeadline,omitempty"`
	HeroSubline     string `json:"heroSubline,omitempty"`
	PrimaryCTALabel string `json:"primaryCtaLabel,omitempty"`
	PrimaryCTAURL   string `json:"primaryCtaUrl,omitempty"`
	UTMSource       string `json:"utmSource,omitempty"`
	UTMMedium       string `json:"utmMedium,omitempty"`
	WhyText         string `json:"whyText,omitempty"`
}

// CampaignSpeaker is a speaker card on a campaign microsite.
type CampaignSpeaker struct {
	ID                     string   `json:"id"`
	CampaignIDs            []string `json:"-"`
	Order                  int      `json:"order"`
	DisplayName            string   `json:"displayName"`
	DisplaySubline         string   `json:"displaySubline,omitempty"`
	AngleHeadline          string   `json:"angleHeadline,omitempty"`
	AngleHook              string   `json:"angleHook,omitempty"`
	WhyNow                 string   `json:"whyNow,omitempty"`
	DisplayCountryLocation string   `json:"displayCountryLocation,omitempty"`
	DisplayLanguages       string   `json:"displayLanguages,omitempty"`
	DisplayFee             string   `json:"displayFee,omitempty"`
	Industries             []string `json:"industries,omitempty"`
	Formats                []string `json:"formats,omitempty"`
	CTALabel               string   `json:"ctaLabel,omitempty"`
	CTAURL                 string   `json:"ctaUrl,omitempty"`
	ImageOverride          string   `json:"imageOverride,omitempty"`
	ProfileImage           string   `json:"profileImage,omitempty"`
	ProfileSlug            string   `json:"profileSlug,omitempty"`
	BookURL                string   `json:"bookUrl,omitempty"`
}

// Microsite is a campaign with its ordered speaker cards.
type Microsite struct {
	Campaign       Campaign          `json:"campaign"`
	Speakers       []CampaignSpeaker `json:"speakers"`
	BookURL        string            `json:"bookUrl"`
	WhatsAppURL    string            `json:"whatsappUrl,omitempty"`
	PrimaryCTA     string            `json:"primaryCta"`
	PrimaryCTAHref string            `json:"primaryCtaHref,omitempty"`
}
