package utils

import "strings"

// MediaKind is the coarse media category used to pick a preview element.
type MediaKind string

const (
	MediaNone  MediaKind = "none"
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// ClassifyMedia maps a Content-Type value to a MediaKind. It never fails;
// anything unrecognized is MediaNone.
func ClassifyMedia(contentType string) MediaKind {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return MediaImage
	case strings.HasPrefix(ct, "video/"):
		return MediaVideo
	case strings.HasPrefix(ct, "audio/"):
		return MediaAudio
	default:
		return MediaNone
	}
}
