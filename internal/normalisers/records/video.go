package records

import (
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/links"
)

// videoSpeakerRefs are the columns that may link a video to its speaker.
var videoSpeakerRefs = []string{
	"Speaker",
	"Speaker Name",
	"Speaker Profile",
	"Speaker Application",
	"Speaker Record",
	"Speaker ID",
}

// Video maps a video row. Rows without an ID get a stable identifier derived
// from their title and publish date.
func Video(rec domain.Record) domain.Video {
	f := rec.Fields

	name := safeString(f, "Speaker Display Name", "Speaker Name", "Speaker")
	slug := domain.SafeSlug(f.String("Speaker Slug"))
	if slug == "" && name != "" {
		slug = domain.PersonSlug(name)
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(f.String(FieldTitle)+"|"+f.String("Publish Date"))).String()
	}

	youtubeID := f.String("YouTube ID")
	sourceURL := f.String("Source URL")
	duration, _ := f.Int("Duration (sec)")
	order, _ := f.Int("Order")

	return domain.Video{
		ID:           id,
		Title:        f.String(FieldTitle),
		Type:         domain.VideoType(f.String("Type")),
		Aspect:       domain.Aspect(f.String("Aspect")),
		Platform:     platform(f.String("Platform")),
		YouTubeID:    youtubeID,
		SourceURL:    sourceURL,
		EmbedURL:     links.YouTubeEmbed(youtubeID, sourceURL),
		DurationSec:  duration,
		PublishDate:  f.String("Publish Date"),
		SpeakerRef:   f.Ref(videoSpeakerRefs...),
		SpeakerSlug:  slug,
		SpeakerName:  name,
		ThumbnailURL: f.String("Thumbnail URL"),
		Order:        order,
		Status:       f.String(FieldStatus),
		Featured:     f.Bool("Featured"),
		SeriesAbout:  f.String("Series About"),
		Topics:       f.Strings("Topics"),
	}
}

// IsPublished reports whether a video's status is "published", ignoring case.
func IsPublished(v domain.Video) bool {
	return strings.EqualFold(strings.TrimSpace(v.Status), "published")
}

func platform(s string) domain.Platform {
	switch p := domain.Platform(s); p {
	case domain.PlatformYouTube, domain.PlatformInstagram, domain.PlatformTikTok:
		return p
	case "":
		return ""
	default:
		return domain.PlatformOther
	}
}
