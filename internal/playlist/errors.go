package playlist

import "errors"

var (
	// ErrPlaylistNotFound is returned when no playlist matches the given id.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrVideoNotFound is returned when a playlist exists but the referenced
	// video entry does not.
	ErrVideoNotFound = errors.New("video not found in playlist")

	// ErrVideoExists is returned when adding a video whose id is already
	// present in the playlist.
	ErrVideoExists = errors.New("video already exists in playlist")
)

// ValidationError reports a missing or malformed field on input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
