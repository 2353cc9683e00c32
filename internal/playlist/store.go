package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store is the persistence boundary for playlist aggregates.
type Store interface {
	List(ctx context.Context, page, limit int) (*Page, error)
	Get(ctx context.Context, id string) (*Playlist, error)
	Create(ctx context.Context, name, description string, videos []Video) (*Playlist, error)
	AddVideo(ctx context.Context, playlistID string, video Video) (*Playlist, error)
	UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (*Playlist, error)
	Delete(ctx context.Context, id string) (string, error)
}

// DB is the subset of pgxpool.Pool the store uses. Tests substitute a mock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps each playlist as a single row with the video list in a
// JSONB column. Every mutation reads the aggregate, changes the slice in
// memory and writes the whole document back; concurrent writers to the same
// playlist are last-write-wins.
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, videos, created_at, updated_at
		FROM playlists
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		pl, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("list playlists scan: %w", err)
		}
		playlists = append(playlists, *pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list playlists rows: %w", err)
	}

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM playlists`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count playlists: %w", err)
	}

	return &Page{
		Playlists:      playlists,
		CurrentPage:    page,
		TotalPages:     (total + limit - 1) / limit,
		TotalPlaylists: total,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Playlist, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, videos, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`, id)
	pl, err := scanPlaylist(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return pl, nil
}

func (s *PostgresStore) Create(ctx context.Context, name, description string, videos []Video) (*Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if utf8.RuneCountInString(name) < nameMinLen {
		return nil, newValidationError("playlist name must be at least 2 characters long")
	}
	if utf8.RuneCountInString(name) > nameMaxLen {
		return nil, newValidationError("playlist name cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return nil, newValidationError("description cannot exceed 500 characters")
	}

	now := time.Now().UTC()
	pl := &Playlist{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Videos:      []Video{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, v := range videos {
		if err := validateVideo(v); err != nil {
			return nil, err
		}
		if pl.HasVideo(v.VideoID) {
			return nil, ErrVideoExists
		}
		if v.AddedAt.IsZero() {
			v.AddedAt = now
		}
		pl.Videos = append(pl.Videos, v)
	}

	doc, err := json.Marshal(pl.Videos)
	if err != nil {
		return nil, fmt.Errorf("encode videos: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO playlists (id, name, description, videos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`, pl.ID, pl.Name, pl.Description, doc, now)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}
	return pl, nil
}

func (s *PostgresStore) AddVideo(ctx context.Context, playlistID string, video Video) (*Playlist, error) {
	if err := validateVideo(video); err != nil {
		return nil, err
	}

	pl, err := s.Get(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if pl.HasVideo(video.VideoID) {
		return nil, ErrVideoExists
	}
	if video.AddedAt.IsZero() {
		video.AddedAt = time.Now().UTC()
	}
	pl.Videos = append(pl.Videos, video)

	if err := s.saveVideos(ctx, pl); err != nil {
		return nil, err
	}
	return pl, nil
}

func (s *PostgresStore) UpdatePriority(ctx context.Context, playlistID, videoID string, priority int) (*Playlist, error) {
	pl, err := s.Get(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range pl.Videos {
		if pl.Videos[i].VideoID == videoID {
			pl.Videos[i].Priority = priority
			found = true
			break
		}
	}
	if !found {
		return nil, ErrVideoNotFound
	}

	if err := s.saveVideos(ctx, pl); err != nil {
		return nil, err
	}
	return pl, nil
}

// RemoveVideo filters the video out of the aggregate. Removing a video that is
// not present leaves the playlist unchanged and is not an error.
func (s *PostgresStore) RemoveVideo(ctx context.Context, playlistID, videoID string) (*Playlist, error) {
	pl, err := s.Get(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	kept := pl.Videos[:0]
	for _, v := range pl.Videos {
		if v.VideoID != videoID {
			kept = append(kept, v)
		}
	}
	pl.Videos = kept

	if err := s.saveVideos(ctx, pl); err != nil {
		return nil, err
	}
	return pl, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (string, error) {
	var name string
	err := s.db.QueryRow(ctx, `
		DELETE FROM playlists
		WHERE id = $1
		RETURNING name
	`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrPlaylistNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete playlist: %w", err)
	}
	return name, nil
}

func (s *PostgresStore) saveVideos(ctx context.Context, pl *Playlist) error {
	doc, err := json.Marshal(pl.Videos)
	if err != nil {
		return fmt.Errorf("encode videos: %w", err)
	}
	pl.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(ctx, `
		UPDATE playlists
		SET videos = $2, updated_at = $3
		WHERE id = $1
	`, pl.ID, doc, pl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	return nil
}

func validateVideo(v Video) error {
	if strings.TrimSpace(v.VideoID) == "" {
		return newValidationError("video id is required")
	}
	if strings.TrimSpace(v.Title) == "" {
		return newValidationError("video title is required")
	}
	if strings.TrimSpace(v.URL) == "" {
		return newValidationError("video url is required")
	}
	return nil
}

func scanPlaylist(row pgx.Row) (*Playlist, error) {
	var pl Playlist
	var doc []byte
	if err := row.Scan(&pl.ID, &pl.Name, &pl.Description, &doc, &pl.CreatedAt, &pl.UpdatedAt); err != nil {
		return nil, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &pl.Videos); err != nil {
			return nil, fmt.Errorf("decode videos: %w", err)
		}
	}
	if pl.Videos == nil {
		pl.Videos = []Video{}
	}
	return &pl, nil
}
