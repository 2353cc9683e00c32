package webapp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/youtube"
)

// Server exposes the application-state controller over HTTP so the web binary
// can front it the same way the playlist API fronts the store.
type Server struct {
	ctrl *Controller
}

func NewServer(ctrl *Controller) *Server {
	return &Server{ctrl: ctrl}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Get("/app/state", s.handleState)
	r.Post("/app/refresh", s.handleRefresh)
	r.Post("/app/import", s.handleImport)
	r.Post("/app/select", s.handleSelect)
	r.Delete("/app/playlists/{id}", s.handleDeletePlaylist)
	r.Patch("/app/playlists/{id}/videos/{videoId}/priority", s.handleUpdatePriority)
	r.Delete("/app/playlists/{id}/videos/{videoId}", s.handleRemoveVideo)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-web",
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.Refresh(r.Context()); err != nil {
		writeControllerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	pl, err := s.ctrl.ImportFromURL(r.Context(), body.Name, body.URL)
	if err != nil {
		writeControllerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"playlist": pl,
		"state":    s.ctrl.State(),
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlaylistID string `json:"playlistId"`
		Index      *int   `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if body.PlaylistID != "" {
		if err := s.ctrl.SelectPlaylist(body.PlaylistID); err != nil {
			writeControllerError(w, err)
			return
		}
	}
	if body.Index != nil {
		if _, err := s.ctrl.SelectVideo(*body.Index); err != nil {
			writeControllerError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.ctrl.DeletePlaylist(r.Context(), id); err != nil {
		writeControllerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Priority int `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id := chi.URLParam(r, "id")
	videoID := chi.URLParam(r, "videoId")
	if err := s.ctrl.UpdatePriority(r.Context(), id, videoID, body.Priority); err != nil {
		writeControllerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	videoID := chi.URLParam(r, "videoId")
	if err := s.ctrl.RemoveVideo(r.Context(), id, videoID); err != nil {
		writeControllerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.State())
}

func writeControllerError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	var upstream *youtube.UpstreamError
	switch {
	case errors.Is(err, ErrInvalidURL),
		errors.Is(err, youtube.ErrNoPlayableVideos),
		errors.Is(err, youtube.ErrVideoNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrImportInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnknownPlaylist), errors.Is(err, ErrNoSuchVideo):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &apiErr):
		writeError(w, apiErr.StatusCode, apiErr.Error())
	case errors.As(err, &upstream):
		writeError(w, http.StatusBadGateway, upstream.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
