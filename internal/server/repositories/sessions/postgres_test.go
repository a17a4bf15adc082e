package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	qUpsert = `(?s)INSERT INTO sessions \(principal, logged_in, updated_at\)\s+VALUES \(\$1, \$2, now\(\)\)\s+ON CONFLICT \(principal\) DO UPDATE`
	qSelect = `SELECT logged_in FROM sessions WHERE principal = \$1`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestSetState_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(qUpsert).WithArgs("alice", true).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qUpsert).WithArgs("alice", false).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetState(context.Background(), "alice", models.LoggedIn))
	require.NoError(t, repo.SetState(context.Background(), "alice", models.LoggedOut))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetState_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(qUpsert).WillReturnError(errors.New("db down"))

	err := repo.SetState(context.Background(), "alice", models.LoggedIn)
	require.ErrorContains(t, err, "db error: db down")
}

func TestState_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).WithArgs("alice").WillReturnRows(sqlmock.NewRows([]string{"logged_in"}).AddRow(true))

	st, err := repo.State(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.LoggedIn, st)
}

func TestState_NotFoundIsLoggedOut(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).WithArgs("bob").WillReturnError(sql.ErrNoRows)

	st, err := repo.State(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, models.LoggedOut, st)
}

func TestState_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).WillReturnError(errors.New("timeout"))

	_, err := repo.State(context.Background(), "alice")
	require.ErrorContains(t, err, "db error: timeout")
}
