package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPlayableVideos means every item in the playlist was private,
	// deleted or otherwise unresolvable.
	ErrNoPlayableVideos = errors.New("playlist contains no accessible videos")

	// ErrVideoNotFound means the API returned zero items for a video lookup.
	ErrVideoNotFound = errors.New("video not found or not accessible")
)

// UpstreamError is a non-success response from the YouTube Data API, carrying
// the upstream message when one was present in the body.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("youtube api status %d", e.StatusCode)
}
