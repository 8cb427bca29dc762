package persistence

import (
	"database/sql"
	"time"

	"creator-dashboard/domain/repository"
)

var mssqlContentQueries = contentQueries{
	vendor: "mssql",
	listScripts: `SELECT id, user_id, title, platform, content, video_length, ISNULL(tone, ''), ISNULL(content_style, ''), created_at, updated_at
FROM dbo.[scripts] WHERE user_id = @p1 ORDER BY created_at DESC`,
	listItems: `SELECT id, user_id, title, type, created_at, updated_at
FROM dbo.[content_items] WHERE user_id = @p1 ORDER BY created_at DESC`,
	insertScript: `INSERT INTO dbo.[scripts] (id, user_id, title, platform, content, video_length, tone, content_style, created_at, updated_at)
VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p9)`,
	deleteScript: `DELETE FROM dbo.[scripts] WHERE id = @p1 AND user_id = @p2`,
	deleteItem:   `DELETE FROM dbo.[content_items] WHERE id = @p1 AND user_id = @p2`,
}

// NewContentRepositoryMSSQL returns the SQL Server / Azure SQL implementation.
func NewContentRepositoryMSSQL(db *sql.DB) repository.IContent {
	return &ContentRepository{db: db, q: mssqlContentQueries, now: time.Now}
}
