package records

import (
	"strings"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// DefaultCardOrder sorts cards without an order after every ordered card.
const DefaultCardOrder = 9999

// Campaign maps a campaign row.
func Campaign(rec domain.Record) domain.Campaign {
	f := rec.Fields
	return domain.Campaign{
		ID:              rec.ID,
		Slug:            f.String(FieldSlug),
		Title:           f.String(FieldTitle),
		Country:         strings.ToUpper(f.String("Country (ISO2)")),
		HeroHeadline:    f.String("Hero Headline"),
		HeroSubline:     f.String("Hero Sub-line"),
		PrimaryCTALabel: f.String("Primary CTA Label"),
		PrimaryCTAURL:   f.String("Primary CTA URL"),
		UTMSource:       f.String("UTM Source Default"),
		UTMMedium:       f.String("UTM Medium Default"),
		WhyText:         f.String("Why Text"),
	}
}

// CampaignSpeaker maps a campaign speaker card row.
func CampaignSpeaker(rec domain.Record) domain.CampaignSpeaker {
	f := rec.Fields

	order, ok := f.Int("Order (Effective)")
	if !ok {
		order, ok = f.Int("Order")
	}
	if !ok {
		order = DefaultCardOrder
	}

	return domain.CampaignSpeaker{
		ID:                     rec.ID,
		CampaignIDs:            recordIDs(f, "Campaign"),
		Order:                  order,
		DisplayName:            safeString(f, "Display Heading"),
		DisplaySubline:         f.String("Display Subline"),
		AngleHeadline:          f.String("Angle Headline (Country)"),
		AngleHook:              f.String("Angle Hook (Country)"),
		WhyNow:                 f.String("Why Book Now (Country)"),
		DisplayCountryLocation: f.String("Display Country - Location"),
		DisplayLanguages:       f.String("Display Languages"),
		DisplayFee:             f.String("Display Fee (Resolved)", "Fee Band (Country)"),
		Industries:             f.Strings("Industries Focus"),
		Formats:                f.Strings("Formats"),
		CTALabel:               f.String("CTA Label"),
		CTAURL:                 f.String("CTA URL"),
		ImageOverride:          f.FirstAttachmentURL("Image Override"),
		ProfileImage:           f.FirstAttachmentURL("Speaker (L) Profile Image"),
		ProfileSlug:            domain.SafeSlug(f.String("Speaker (L) Slug")),
	}
}
