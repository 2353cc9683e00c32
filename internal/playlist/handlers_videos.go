package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	var body struct {
		VideoID  string `json:"videoId"`
		Title    string `json:"title"`
		URL      string `json:"url"`
		Priority int    `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.VideoID = strings.TrimSpace(body.VideoID)
	body.Title = strings.TrimSpace(body.Title)
	body.URL = strings.TrimSpace(body.URL)

	if body.VideoID == "" || body.Title == "" || body.URL == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: videoId, title and url are required")
		return
	}

	pl, err := s.store.AddVideo(ctx, playlistID, Video{
		VideoID:  body.VideoID,
		Title:    body.Title,
		URL:      body.URL,
		Priority: body.Priority,
	})
	if err != nil {
		writeStoreError(w, "add video", err)
		return
	}

	s.publishEvent(ctx, "video.added", map[string]any{
		"playlistId": playlistID,
		"videoId":    body.VideoID,
	})

	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistID := chi.URLParam(r, "playlistId")
	videoID := chi.URLParam(r, "videoId")
	if playlistID == "" || videoID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist or video id")
		return
	}

	var body struct {
		Priority int `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pl, err := s.store.UpdatePriority(ctx, playlistID, videoID, body.Priority)
	if err != nil {
		writeStoreError(w, "update priority", err)
		return
	}

	s.publishEvent(ctx, "video.priority", map[string]any{
		"playlistId": playlistID,
		"videoId":    videoID,
		"priority":   body.Priority,
	})

	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistID := chi.URLParam(r, "playlistId")
	videoID := chi.URLParam(r, "videoId")
	if playlistID == "" || videoID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist or video id")
		return
	}

	pl, err := s.store.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		writeStoreError(w, "remove video", err)
		return
	}

	s.publishEvent(ctx, "video.removed", map[string]any{
		"playlistId": playlistID,
		"videoId":    videoID,
	})

	writeJSON(w, http.StatusOK, pl)
}
