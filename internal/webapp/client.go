package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/playlist"
)

// APIError is a non-success response from the playlist API, carrying the
// decoded message when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("playlist api status %d", e.StatusCode)
}

// APIClient talks to the playlist REST API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) ListPlaylists(ctx context.Context) ([]playlist.Playlist, error) {
	var page playlist.Page
	err := c.do(ctx, http.MethodGet, "/playlists?page=1&limit=100", nil, http.StatusOK, &page)
	if err != nil {
		return nil, err
	}
	return page.Playlists, nil
}

func (c *APIClient) CreatePlaylist(ctx context.Context, name string) (*playlist.Playlist, error) {
	body := map[string]any{
		"name":   name,
		"videos": []playlist.Video{},
	}
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPost, "/playlists", body, http.StatusCreated, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (c *APIClient) AddVideo(ctx context.Context, playlistID string, v playlist.Video) (*playlist.Playlist, error) {
	body := map[string]any{
		"videoId":  v.VideoID,
		"title":    v.Title,
		"url":      v.URL,
		"priority": v.Priority,
	}
	path := fmt.Sprintf("/playlists/%s/videos", url.PathEscape(playlistID))
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPost, path, body, http.StatusOK, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (c *APIClient) UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*playlist.Playlist, error) {
	body := map[string]any{"priority": priority}
	path := fmt.Sprintf("/playlists/%s/videos/%s/priority",
		url.PathEscape(playlistID), url.PathEscape(videoID))
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPatch, path, body, http.StatusOK, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (c *APIClient) RemoveVideo(ctx context.Context, playlistID, videoID string) (*playlist.Playlist, error) {
	path := fmt.Sprintf("/playlists/%s/videos/%s",
		url.PathEscape(playlistID), url.PathEscape(videoID))
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (c *APIClient) DeletePlaylist(ctx context.Context, id string) error {
	path := "/playlists/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
