package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureContentSchemaMSSQL creates the content tables in SQL Server when missing.
func EnsureContentSchemaMSSQL(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	createIfMissing := func(table, ddl string) error {
		q := fmt.Sprintf(`IF OBJECT_ID(N'%s', N'U') IS NULL BEGIN %s END`, table, ddl)
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
		return nil
	}
	if err := createIfMissing("dbo.scripts", `CREATE TABLE dbo.[scripts] (
  id NVARCHAR(64) NOT NULL PRIMARY KEY,
  user_id NVARCHAR(64) NOT NULL,
  title NVARCHAR(255) NOT NULL,
  platform NVARCHAR(64) NOT NULL,
  content NVARCHAR(MAX) NOT NULL,
  video_length INT NOT NULL DEFAULT 0,
  tone NVARCHAR(64) NULL,
  content_style NVARCHAR(64) NULL,
  created_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME(),
  updated_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME()
)`); err != nil {
		return err
	}
	return createIfMissing("dbo.content_items", `CREATE TABLE dbo.[content_items] (
  id NVARCHAR(64) NOT NULL PRIMARY KEY,
  user_id NVARCHAR(64) NOT NULL,
  title NVARCHAR(255) NOT NULL,
  type NVARCHAR(32) NOT NULL,
  created_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME(),
  updated_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME()
)`)
}
