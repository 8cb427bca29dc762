package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"creator-dashboard/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T, q contentQueries) (*ContentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &ContentRepository{db: db, q: q, now: func() time.Time { return fixedNow }}, mock
}

func TestContentRepository_ListScripts(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectQuery(regexp.QuoteMeta(postgresContentQueries.listScripts)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "platform", "content", "video_length", "tone", "content_style", "created_at", "updated_at"}).
			AddRow("s1", "user-1", "Cat Shorts", "youtube", "[HOOK]", 60, "casual", "", fixedNow, fixedNow))

	res, err := repo.ListScripts(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, []model.Script{{
		ID: "s1", UserID: "user-1", Title: "Cat Shorts", Platform: "youtube", Content: "[HOOK]",
		VideoLength: 60, Tone: "casual", CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_ListItems(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectQuery(regexp.QuoteMeta(postgresContentQueries.listItems)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "type", "created_at", "updated_at"}).
			AddRow("i1", "user-1", "Thumbnail", "image", fixedNow, fixedNow).
			AddRow("i2", "user-1", "Brief", "document", fixedNow, fixedNow))

	res, err := repo.ListItems(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, model.ContentImage, res[0].Type)
	require.Nil(t, res[0].Platform)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_ListEmpty(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectQuery(regexp.QuoteMeta(postgresContentQueries.listItems)).
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "type", "created_at", "updated_at"}))

	res, err := repo.ListItems(context.Background(), "user-2")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestContentRepository_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectQuery(regexp.QuoteMeta(postgresContentQueries.listScripts)).
		WithArgs("user-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListScripts(context.Background(), "user-1")
	require.EqualError(t, err, "connection reset")
}

func TestContentRepository_SaveScript(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectExec(regexp.QuoteMeta(postgresContentQueries.insertScript)).
		WithArgs(sqlmock.AnyArg(), "user-1", "Hooks", "youtube", "text", 30, "casual", "educational", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.SaveScript(context.Background(), model.Script{
		UserID: "user-1", Title: "Hooks", Platform: "youtube", Content: "text",
		VideoLength: 30, Tone: "casual", ContentStyle: "educational",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, fixedNow, saved.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t, postgresContentQueries)

	mock.ExpectExec(regexp.QuoteMeta(postgresContentQueries.deleteScript)).
		WithArgs("s1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(postgresContentQueries.deleteItem)).
		WithArgs("i9", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteScript(context.Background(), "user-1", "s1"))
	require.ErrorIs(t, repo.DeleteItem(context.Background(), "user-1", "i9"), model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryMSSQL_UsesNamedParameters(t *testing.T) {
	repo, mock := newMockRepo(t, mssqlContentQueries)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM dbo.[scripts] WHERE user_id = @p1`)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "platform", "content", "video_length", "tone", "content_style", "created_at", "updated_at"}))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM dbo.[content_items] WHERE id = @p1 AND user_id = @p2`)).
		WithArgs("i1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.ListScripts(context.Background(), "user-1")
	require.NoError(t, err)
	require.NoError(t, repo.DeleteItem(context.Background(), "user-1", "i1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewContentRepositoryMSSQL(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo, ok := NewContentRepositoryMSSQL(db).(*ContentRepository)
	require.True(t, ok)
	require.Equal(t, "mssql", repo.q.vendor)
}
