package links

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultWhatsAppPhone is the bureau's WhatsApp number.
const DefaultWhatsAppPhone = "+27674842001"

// WhatsApp builds wa.me chat links for a phone number.
type WhatsApp struct {
	digits string
}

// NewWhatsApp creates a link builder. An empty phone uses the default.
func NewWhatsApp(phone string) WhatsApp {
	if strings.TrimSpace(phone) == "" {
		phone = DefaultWhatsAppPhone
	}
	return WhatsApp{digits: digitsOnly(phone)}
}

// Link returns a chat link with message prefilled.
func (w WhatsApp) Link(message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", w.digits, text)
}

// GeneralMessage is the default enquiry text.
func GeneralMessage() string {
	return "Hello ASB — I’d like more information about speakers for an upcoming event. Thanks!"
}

// SpeakerMessage is the enquiry text for a named speaker.
func SpeakerMessage(name string) string {
	return fmt.Sprintf("Hello ASB — I’d like more information about %s for an upcoming event. Thanks!", name)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
