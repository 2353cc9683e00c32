package youtube

import (
	"net/url"
	"regexp"
)

// Playlist ids ride in the list= query parameter on both /playlist and /watch
// URLs; the match is tolerant of anything around it.
var playlistIDPattern = regexp.MustCompile(`(?i)list=([^&#]+)`)

// Video ids are exactly 11 characters. Each known URL shape gets its own
// pattern so stray 11-character runs elsewhere in the URL don't match.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})(?:[?&#/]|$)`),
	regexp.MustCompile(`/embed/([A-Za-z0-9_-]{11})(?:[?&#/]|$)`),
	regexp.MustCompile(`/shorts/([A-Za-z0-9_-]{11})(?:[?&#/]|$)`),
	regexp.MustCompile(`/v/([A-Za-z0-9_-]{11})(?:[?&#/]|$)`),
}

var knownHosts = map[string]bool{
	"www.youtube.com":   true,
	"youtube.com":       true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// ExtractPlaylistID returns the playlist identifier embedded in rawURL, or ""
// when the URL carries none.
func ExtractPlaylistID(rawURL string) string {
	m := playlistIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractVideoID returns the 11-character video identifier embedded in
// rawURL, or "" when no known URL shape matches.
func ExtractVideoID(rawURL string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// ValidateURL reports whether rawURL is a YouTube URL from which a playlist
// or video identifier can be extracted. The hostname must be a known YouTube
// host; a list= parameter on an unrelated domain does not qualify.
func ValidateURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !knownHosts[u.Hostname()] {
		return false
	}
	return ExtractPlaylistID(rawURL) != "" || ExtractVideoID(rawURL) != ""
}

// WatchURL builds the canonical watch URL for a video id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
