package webapp

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/playlist"
	"github.com/JiveeteshMourya/Priority-Playlist/internal/youtube"
)

const defaultPlaylistName = "My Playlist"

var (
	// ErrImportInFlight rejects a second import while one is running. This is
	// advisory mutual exclusion; the backend does not enforce it.
	ErrImportInFlight = errors.New("an import is already in progress")

	ErrInvalidURL      = errors.New("invalid YouTube URL")
	ErrUnknownPlaylist = errors.New("unknown playlist")
	ErrNoSuchVideo     = errors.New("video index out of range")
)

// Phase is where an import currently is. Failures at any phase reset to idle
// with the error recorded.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseFetching   Phase = "fetching"
	PhasePersisting Phase = "persisting"
)

// API is the slice of the playlist REST surface the controller drives.
type API interface {
	ListPlaylists(ctx context.Context) ([]playlist.Playlist, error)
	CreatePlaylist(ctx context.Context, name string) (*playlist.Playlist, error)
	AddVideo(ctx context.Context, playlistID string, v playlist.Video) (*playlist.Playlist, error)
	UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*playlist.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (*playlist.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
}

// VideoSource resolves playlist and video metadata from YouTube.
type VideoSource interface {
	PlaylistItems(ctx context.Context, playlistID string) ([]youtube.Item, error)
	VideoTitle(ctx context.Context, videoID string) (string, error)
}

// State is a snapshot of the UI-facing application state. The playlist slice
// is a read-through cache of the backend, overwritten wholesale on refresh.
type State struct {
	Playlists         []playlist.Playlist `json:"playlists"`
	ActivePlaylistID  string              `json:"activePlaylistId"`
	CurrentVideoIndex int                 `json:"currentVideoIndex"`
	Phase             Phase               `json:"phase"`
	Importing         bool                `json:"importing"`
	LastError         string              `json:"lastError,omitempty"`
}

// Controller owns the client-side application state: the cached playlists,
// which one is active, which video is selected, and the import workflow.
type Controller struct {
	api    API
	source VideoSource

	mu           sync.Mutex
	playlists    []playlist.Playlist
	activeID     string
	currentIndex int
	phase        Phase
	lastError    string
}

func NewController(api API, source VideoSource) *Controller {
	return &Controller{
		api:          api,
		source:       source,
		currentIndex: -1,
		phase:        PhaseIdle,
	}
}

// Init loads existing playlists and activates the first one. When the backend
// has none a default playlist is created, so the user always starts with a
// target for single-video adds.
func (c *Controller) Init(ctx context.Context) error {
	playlists, err := c.api.ListPlaylists(ctx)
	if err != nil {
		return err
	}
	if len(playlists) == 0 {
		pl, err := c.api.CreatePlaylist(ctx, defaultPlaylistName)
		if err != nil {
			return err
		}
		playlists = []playlist.Playlist{*pl}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.playlists = playlists
	c.activateLocked(playlists[0].ID)
	return nil
}

// ImportFromURL runs the full import workflow: validate the URL, fetch the
// item list from YouTube, create a playlist and persist every item. The new
// playlist becomes active with its first video selected. name may be empty;
// the default name is used then.
func (c *Controller) ImportFromURL(ctx context.Context, name, rawURL string) (*playlist.Playlist, error) {
	if err := c.beginImport(); err != nil {
		return nil, err
	}

	pl, err := c.runImport(ctx, name, rawURL)
	if err != nil {
		c.endImport(err)
		return nil, err
	}

	c.mu.Lock()
	c.playlists = append(c.playlists, *pl)
	c.activateLocked(pl.ID)
	c.phase = PhaseIdle
	c.lastError = ""
	c.mu.Unlock()
	return pl, nil
}

func (c *Controller) runImport(ctx context.Context, name, rawURL string) (*playlist.Playlist, error) {
	if !youtube.ValidateURL(rawURL) {
		return nil, ErrInvalidURL
	}

	c.setPhase(PhaseFetching)
	var items []youtube.Item
	if playlistID := youtube.ExtractPlaylistID(rawURL); playlistID != "" {
		var err error
		items, err = c.source.PlaylistItems(ctx, playlistID)
		if err != nil {
			return nil, err
		}
	} else {
		videoID := youtube.ExtractVideoID(rawURL)
		title, err := c.source.VideoTitle(ctx, videoID)
		if err != nil {
			return nil, err
		}
		items = []youtube.Item{{VideoID: videoID, Title: title}}
	}

	c.setPhase(PhasePersisting)
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPlaylistName
	}
	pl, err := c.api.CreatePlaylist(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		updated, err := c.api.AddVideo(ctx, pl.ID, playlist.Video{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     youtube.WatchURL(it.VideoID),
		})
		if err != nil {
			return nil, err
		}
		pl = updated
	}
	return pl, nil
}

func (c *Controller) beginImport() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseIdle {
		return ErrImportInFlight
	}
	c.phase = PhaseValidating
	c.lastError = ""
	return nil
}

func (c *Controller) endImport(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseIdle
	c.lastError = err.Error()
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

// Refresh reloads the playlist cache wholesale. The active playlist is kept
// when it still exists, otherwise selection falls back to the first playlist.
func (c *Controller) Refresh(ctx context.Context) error {
	playlists, err := c.api.ListPlaylists(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.playlists = playlists
	if _, ok := c.findLocked(c.activeID); ok {
		return nil
	}
	if len(playlists) > 0 {
		c.activateLocked(playlists[0].ID)
	} else {
		c.clearSelectionLocked()
	}
	return nil
}

// SelectPlaylist makes the playlist active and selects its first video.
func (c *Controller) SelectPlaylist(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return ErrUnknownPlaylist
	}
	c.activateLocked(id)
	return nil
}

// SelectVideo picks a video in the active playlist for playback.
func (c *Controller) SelectVideo(index int) (*playlist.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pl, ok := c.findLocked(c.activeID)
	if !ok {
		return nil, ErrUnknownPlaylist
	}
	if index < 0 || index >= len(pl.Videos) {
		return nil, ErrNoSuchVideo
	}
	c.currentIndex = index
	v := pl.Videos[index]
	return &v, nil
}

// UpdatePriority changes a video's priority and refreshes the cached copy of
// its playlist from the response.
func (c *Controller) UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) error {
	updated, err := c.api.UpdatePriority(ctx, playlistID, videoID, priority)
	if err != nil {
		return err
	}
	c.replace(updated)
	return nil
}

// RemoveVideo removes a video from a playlist and refreshes the cached copy.
func (c *Controller) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	updated, err := c.api.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(updated)
	if playlistID == c.activeID && c.currentIndex >= len(updated.Videos) {
		c.currentIndex = len(updated.Videos) - 1
	}
	return nil
}

// DeletePlaylist deletes a playlist. When the active playlist goes away the
// first remaining one takes over, or selection clears if none remain.
func (c *Controller) DeletePlaylist(ctx context.Context, id string) error {
	if err := c.api.DeletePlaylist(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.playlists[:0]
	for _, pl := range c.playlists {
		if pl.ID != id {
			kept = append(kept, pl)
		}
	}
	c.playlists = kept

	if id != c.activeID {
		return nil
	}
	if len(c.playlists) > 0 {
		c.activateLocked(c.playlists[0].ID)
	} else {
		c.clearSelectionLocked()
	}
	return nil
}

// State returns a copy of the current application state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	playlists := make([]playlist.Playlist, len(c.playlists))
	copy(playlists, c.playlists)
	return State{
		Playlists:         playlists,
		ActivePlaylistID:  c.activeID,
		CurrentVideoIndex: c.currentIndex,
		Phase:             c.phase,
		Importing:         c.phase != PhaseIdle,
		LastError:         c.lastError,
	}
}

func (c *Controller) replace(updated *playlist.Playlist) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(updated)
}

func (c *Controller) replaceLocked(updated *playlist.Playlist) {
	for i := range c.playlists {
		if c.playlists[i].ID == updated.ID {
			c.playlists[i] = *updated
			return
		}
	}
}

func (c *Controller) findLocked(id string) (*playlist.Playlist, bool) {
	for i := range c.playlists {
		if c.playlists[i].ID == id {
			return &c.playlists[i], true
		}
	}
	return nil, false
}

func (c *Controller) activateLocked(id string) {
	c.activeID = id
	pl, _ := c.findLocked(id)
	if pl != nil && len(pl.Videos) > 0 {
		c.currentIndex = 0
	} else {
		c.currentIndex = -1
	}
}

func (c *Controller) clearSelectionLocked() {
	c.activeID = ""
	c.currentIndex = -1
}
