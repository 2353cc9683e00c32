package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	store Store
	rdb   *redis.Client
}

func NewServer(store Store, rdb *redis.Client) *Server {
	return &Server{
		store: store,
		rdb:   rdb,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Get("/playlists", s.handleListPlaylists)
	r.Post("/playlists", s.handleCreatePlaylist)
	r.Get("/playlists/{id}", s.handleGetPlaylist)
	r.Delete("/playlists/{id}", s.handleDeletePlaylist)

	r.Post("/playlists/{id}/videos", s.handleAddVideo)
	r.Patch("/playlists/{playlistId}/videos/{videoId}/priority", s.handleUpdatePriority)
	r.Delete("/playlists/{playlistId}/videos/{videoId}", s.handleRemoveVideo)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-api",
	})
}
