package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JiveeteshMourya/Priority-Playlist/internal/webapp"
	"github.com/JiveeteshMourya/Priority-Playlist/internal/youtube"
)

func main() {
	port := getenv("PORT", "5175")
	apiURL := getenv("API_URL", "http://localhost:5000/api")
	ytAPIKey := getenv("YOUTUBE_API_KEY", "")
	if ytAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}
	ytBaseURL := getenv("YOUTUBE_API_URL", youtube.DefaultBaseURL)

	api := webapp.NewAPIClient(apiURL)
	source := youtube.NewClient(ytAPIKey, ytBaseURL)
	ctrl := webapp.NewController(api, source)

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := ctrl.Init(initCtx); err != nil {
		log.Fatalf("playlist-web init: %v", err)
	}

	srv := webapp.NewServer(ctrl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/", srv.Router())

	log.Printf("playlist-web listening on :%s (API=%s)", port, apiURL)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("playlist-web: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
