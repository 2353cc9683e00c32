package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": msg,
	})
}

// writeStoreError maps store failures to the REST contract: validation and
// duplicate-video errors are 400, missing playlist or video is 404, anything
// else is a 500 with the detail kept out of the response body.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrVideoExists):
		writeError(w, http.StatusBadRequest, "Video already exists in playlist")
	case errors.Is(err, ErrPlaylistNotFound):
		writeError(w, http.StatusNotFound, "Playlist not found")
	case errors.Is(err, ErrVideoNotFound):
		writeError(w, http.StatusNotFound, "Video not found in playlist")
	default:
		log.Printf("playlist-api: %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "database error")
	}
}

func (s *Server) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("playlist-api: marshal event: %v", err)
		return
	}
	if err := s.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("playlist-api: publish event: %v", err)
	}
}
