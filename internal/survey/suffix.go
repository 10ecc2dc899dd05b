package survey

import (
	"net/url"
	"strings"
)

const privateMarker = "private/"

// MediaSuffix derives a short identifier from a media URL. When the URL
// contains "private/", the suffix is everything after its first occurrence
// and may itself contain slashes. Otherwise it is the segment after the last
// slash of the parsed URL path. Total over any string input.
func MediaSuffix(raw string) string {
	if _, after, ok := strings.Cut(raw, privateMarker); ok {
		return after
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		// Unparseable input degrades to the raw string's last segment.
		return lastSegment(raw)
	}
	// EscapedPath keeps percent-encoding intact; decoding happens only when
	// the report renders display text.
	return lastSegment(parsed.EscapedPath())
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
