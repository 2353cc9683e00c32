package webapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/playlist"
)

func TestAPIClient_ListPlaylists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/playlists", r.URL.Path)
		_ = json.NewEncoder(w).Encode(playlist.Page{
			Playlists:      []playlist.Playlist{{ID: "pl-1", Name: "A"}},
			CurrentPage:    1,
			TotalPages:     1,
			TotalPlaylists: 1,
		})
	}))
	defer ts.Close()

	playlists, err := NewAPIClient(ts.URL).ListPlaylists(context.Background())
	assert.NoError(t, err)
	assert.Len(t, playlists, 1)
	assert.Equal(t, "pl-1", playlists[0].ID)
}

func TestAPIClient_CreatePlaylist(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		var body struct {
			Name string `json:"name"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "My List", body.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(playlist.Playlist{ID: "pl-1", Name: body.Name})
	}))
	defer ts.Close()

	pl, err := NewAPIClient(ts.URL).CreatePlaylist(context.Background(), "My List")
	assert.NoError(t, err)
	assert.Equal(t, "pl-1", pl.ID)
}

func TestAPIClient_AddVideo_ErrorDecoding(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Video already exists in playlist"}`))
	}))
	defer ts.Close()

	_, err := NewAPIClient(ts.URL).AddVideo(context.Background(), "pl-1", playlist.Video{
		VideoID: "aaaaaaaaaa1", Title: "T", URL: "u",
	})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Video already exists in playlist", apiErr.Message)
}

func TestAPIClient_DeletePlaylist(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "DELETE", r.Method)
			assert.Equal(t, "/playlists/pl-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "deleted", "success": true})
		}))
		defer ts.Close()

		assert.NoError(t, NewAPIClient(ts.URL).DeletePlaylist(context.Background(), "pl-1"))
	})

	t.Run("not found", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Playlist not found"}`))
		}))
		defer ts.Close()

		err := NewAPIClient(ts.URL).DeletePlaylist(context.Background(), "missing")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
