package links

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	youtuBePattern  = regexp.MustCompile(`(?i)youtu\.be/([\w-]{6,})`)
	watchPattern    = regexp.MustCompile(`(?i)[?&]v=([\w-]{6,})`)
	shortsPattern   = regexp.MustCompile(`(?i)youtube\.com/shorts/([\w-]{6,})`)
	embedParameters = url.Values{
		"rel":            {"0"},
		"modestbranding": {"1"},
		"playsinline":    {"1"},
	}.Encode()
)

// ExtractYouTubeID finds the video ID in a youtu.be, watch or shorts URL.
func ExtractYouTubeID(raw string) string {
	for _, p := range []*regexp.Regexp{youtuBePattern, watchPattern, shortsPattern} {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// YouTubeEmbed returns the player URL for id, or for the video sourceURL
// points at when id is empty. Returns "" when neither yields an ID.
func YouTubeEmbed(id, sourceURL string) string {
	if id == "" {
		id = ExtractYouTubeID(sourceURL)
	}
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id) + "?" + embedParameters
}

// EmbedFriendly rewrites YouTube and Vimeo page URLs to their player URLs.
// Other URLs are returned unchanged.
func EmbedFriendly(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be"):
		id := u.Query().Get("v")
		if id == "" {
			id = lastSegment(u.Path)
		}
		if id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case strings.Contains(host, "vimeo.com"):
		if id := lastSegment(u.Path); id != "" {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return raw
}

func lastSegment(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
