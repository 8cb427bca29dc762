package persistence

import (
	"context"
	"database/sql"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"

	"github.com/google/uuid"
)

// contentQueries holds the vendor-specific statements of the content tables.
// Parameter order is fixed: list(user_id); insert(id, user_id, title, platform,
// content, video_length, tone, content_style, now); delete(id, user_id).
type contentQueries struct {
	vendor       string
	listScripts  string
	listItems    string
	insertScript string
	deleteScript string
	deleteItem   string
}

var postgresContentQueries = contentQueries{
	vendor: "postgres",
	listScripts: `SELECT id, user_id, title, platform, content, video_length, COALESCE(tone, ''), COALESCE(content_style, ''), created_at, updated_at
FROM scripts WHERE user_id = $1 ORDER BY created_at DESC`,
	listItems: `SELECT id, user_id, title, type, created_at, updated_at
FROM content_items WHERE user_id = $1 ORDER BY created_at DESC`,
	insertScript: `INSERT INTO scripts (id, user_id, title, platform, content, video_length, tone, content_style, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
	deleteScript: `DELETE FROM scripts WHERE id = $1 AND user_id = $2`,
	deleteItem:   `DELETE FROM content_items WHERE id = $1 AND user_id = $2`,
}

// ContentRepository implements repository.IContent on database/sql.
type ContentRepository struct {
	db  *sql.DB
	q   contentQueries
	now func() time.Time
}

// NewContentRepository returns the PostgreSQL implementation.
func NewContentRepository(db *sql.DB) repository.IContent {
	return &ContentRepository{db: db, q: postgresContentQueries, now: time.Now}
}

func (r *ContentRepository) ListScripts(ctx context.Context, userID string) ([]model.Script, error) {
	rows, err := r.db.QueryContext(ctx, r.q.listScripts, userID)
	if err != nil {
		logger.GetLogger().WithField("vendor", r.q.vendor).WithError(err).Error("query scripts failed")
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Script, 0)
	for rows.Next() {
		var s model.Script
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Platform, &s.Content, &s.VideoLength, &s.Tone, &s.ContentStyle, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ContentRepository) ListItems(ctx context.Context, userID string) ([]model.ContentItem, error) {
	rows, err := r.db.QueryContext(ctx, r.q.listItems, userID)
	if err != nil {
		logger.GetLogger().WithField("vendor", r.q.vendor).WithError(err).Error("query content items failed")
		return nil, err
	}
	defer rows.Close()

	list := make([]model.ContentItem, 0)
	for rows.Next() {
		var it model.ContentItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.Title, &it.Type, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *ContentRepository) SaveScript(ctx context.Context, script model.Script) (model.Script, error) {
	now := r.now().UTC()
	if script.ID == "" {
		script.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, r.q.insertScript,
		script.ID, script.UserID, script.Title, script.Platform, script.Content,
		script.VideoLength, script.Tone, script.ContentStyle, now)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"vendor":  r.q.vendor,
			"user_id": script.UserID,
			"error":   err,
		}).Error("insert script failed")
		return model.Script{}, err
	}
	script.CreatedAt = now
	script.UpdatedAt = now
	return script, nil
}

func (r *ContentRepository) DeleteScript(ctx context.Context, userID, id string) error {
	return r.deleteOne(ctx, r.q.deleteScript, userID, id)
}

func (r *ContentRepository) DeleteItem(ctx context.Context, userID, id string) error {
	return r.deleteOne(ctx, r.q.deleteItem, userID, id)
}

func (r *ContentRepository) deleteOne(ctx context.Context, query, userID, id string) error {
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
