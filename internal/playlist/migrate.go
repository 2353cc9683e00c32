package playlist

import (
	"context"
	"log"
)

func AutoMigrate(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id          uuid PRIMARY KEY,
          name        TEXT NOT NULL,
          description TEXT NOT NULL DEFAULT '',
          videos      JSONB NOT NULL DEFAULT '[]',
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `)
	if err != nil {
		log.Printf("migrate playlists: %v", err)
		return err
	}

	if _, err := db.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_playlists_created_at
      ON playlists(created_at DESC)
    `); err != nil {
		return err
	}

	return nil
}
