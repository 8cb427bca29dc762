package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureContentSchema creates the content tables on PostgreSQL when missing.
// Safe to call at startup.
func EnsureContentSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS scripts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  platform TEXT NOT NULL,
  content TEXT NOT NULL,
  video_length INTEGER NOT NULL DEFAULT 0,
  tone TEXT,
  content_style TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_scripts_user_id ON scripts (user_id)`,
		`CREATE TABLE IF NOT EXISTS content_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  type TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_content_items_user_id ON content_items (user_id)`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure content schema: %w", err)
		}
	}
	return nil
}
