package domain

// VideoType classifies a video.
type VideoType string

const (
	VideoFullInterview VideoType = "Full Interview"
	VideoHighlight     VideoType = "Highlight"
	VideoVerticalReel  VideoType = "Vertical Reel"
)

// Aspect is a video aspect ratio.
type Aspect string

const (
	AspectLandscape Aspect = "16:9"
	AspectPortrait  Aspect = "9:16"
	AspectSquare    Aspect = "1:1"
)

// Platform is where a video is hosted.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformOther     Platform = "Other"
)

// Video is an interview, highlight or reel featuring a speaker.
type Video struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Type             VideoType `json:"type"`
	Aspect           Aspect    `json:"aspect,omitempty"`
	Platform         Platform  `json:"platform"`
	YouTubeID        string    `json:"youtubeId,omitempty"`
	SourceURL        string    `json:"sourceUrl,omitempty"`
	EmbedURL         string    `json:"embedUrl,omitempty"`
	DurationSec      int       `json:"durationSec,omitempty"`
	PublishDate      string    `json:"publishDate,omitempty"`
	SpeakerRef       Reference `json:"speakerRecordId"`
	SpeakerSlug      string    `json:"speakerSlug,omitempty"`
	SpeakerName      string    `json:"speakerName,omitempty"`
	SpeakerTitle     string    `json:"speakerTitle,omitempty"`
	SpeakerFirstName string    `json:"speakerFirstName,omitempty"`
	SpeakerLastName  string    `json:"speakerLastName,omitempty"`
	ThumbnailURL     string    `json:"thumbnailUrl,omitempty"`
	Order            int       `json:"order,omitempty"`
	Status           string    `json:"status,omitempty"`
	Featured         bool      `json:"featured"`
	SeriesAbout      string    `json:"seriesAbout,omitempty"`
	Topics           []string  `json:"topics,omitempty"`
}

// SpeakerVideos groups one speaker's published videos by type.
type SpeakerVideos struct {
	Full       *Video  `json:"full,omitempty"`
	Highlights []Video `json:"highlights"`
	Reels      []Video `json:"reels"`
	All        []Video `json:"all"`
}
