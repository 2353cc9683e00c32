package playlist

import (
	"time"
)

// Playlist is the unit of storage: metadata plus the embedded, ordered
// video list. Mutations rewrite the whole aggregate.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Videos      []Video   `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Video is embedded within a Playlist; it has no identity of its own.
// VideoID is unique within one playlist.
type Video struct {
	VideoID  string    `json:"videoId"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Priority int       `json:"priority"`
	AddedAt  time.Time `json:"addedAt"`
}

// Page is one page of the playlist listing, newest first.
type Page struct {
	Playlists      []Playlist `json:"playlists"`
	CurrentPage    int        `json:"currentPage"`
	TotalPages     int        `json:"totalPages"`
	TotalPlaylists int        `json:"totalPlaylists"`
}

const (
	nameMinLen        = 2
	nameMaxLen        = 100
	descriptionMaxLen = 500

	defaultPage  = 1
	defaultLimit = 10
)

// HasVideo reports whether the playlist already contains the given video.
func (p *Playlist) HasVideo(videoID string) bool {
	for _, v := range p.Videos {
		if v.VideoID == videoID {
			return true
		}
	}
	return false
}
