package links

import "net/url"

const (
	// BookRoute is the booking form route.
	BookRoute = "#/book-a-speaker"

	// FindRoute is the speaker directory route.
	FindRoute = "#/find-speakers"
)

// BookURL returns the booking route, prefilled with a speaker name when given.
func BookURL(speaker string) string {
	if speaker == "" {
		return BookRoute
	}
	return BookRoute + "?speaker=" + url.QueryEscape(speaker)
}

// UTM holds campaign tracking parameters.
type UTM struct {
	Source   string
	Medium   string
	Campaign string
}

// AppendUTM sets the non-empty UTM parameters on an absolute URL.
// Relative or unparseable URLs are returned unchanged.
func AppendUTM(raw string, utm UTM) string {
	if raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return raw
	}

	q := u.Query()
	if utm.Source != "" {
		q.Set("utm_source", utm.Source)
	}
	if utm.Medium != "" {
		q.Set("utm_medium", utm.Medium)
	}
	if utm.Campaign != "" {
		q.Set("utm_campaign", utm.Campaign)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
