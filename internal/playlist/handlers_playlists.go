package playlist

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)

	result, err := s.store.List(ctx, page, limit)
	if err != nil {
		writeStoreError(w, "list playlists", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Videos      []Video `json:"videos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pl, err := s.store.Create(ctx, body.Name, body.Description, body.Videos)
	if err != nil {
		writeStoreError(w, "create playlist", err)
		return
	}

	s.publishEvent(ctx, "playlist.created", map[string]any{"playlist": pl})

	writeJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	pl, err := s.store.Get(ctx, id)
	if err != nil {
		writeStoreError(w, "get playlist", err)
		return
	}

	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	name, err := s.store.Delete(ctx, id)
	if err != nil {
		writeStoreError(w, "delete playlist", err)
		return
	}

	s.publishEvent(ctx, "playlist.deleted", map[string]any{"playlistId": id})

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Playlist \"" + name + "\" deleted successfully",
		"success": true,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
