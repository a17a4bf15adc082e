package certificates

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/dmitrijs2005/recmarket/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	qLock   = `SELECT pg_advisory_xact_lock\(\$1\)`
	qMax    = `SELECT COALESCE\(MAX\(id\) \+ 1, 0\), COALESCE\(MAX\(created_at\), 0\) FROM certificates`
	qInsert = `(?s)INSERT INTO certificates \(id, energy_source, details, price, image_url, owner, created_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`
	qList   = `(?s)SELECT id, energy_source, details, price, image_url, owner, created_at\s+FROM certificates\s+ORDER BY id`
)

func newRepoWithMock(t *testing.T, now int64) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	clock := timex.ClockFunc(func() time.Time { return time.Unix(0, now) })
	return NewPostgresRepository(db, clock), mock, db
}

func TestPostgresAppend_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 5_000)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qLock).WithArgs(appendLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(qMax).WillReturnRows(sqlmock.NewRows([]string{"next", "last"}).AddRow(int64(3), int64(4_000)))
	mock.ExpectExec(qInsert).
		WithArgs(int64(3), "solar", "rooftop array", int64(1000), "http://x/img.png", "alice", int64(5_000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	owner := "alice"
	c, err := repo.Append(context.Background(), &models.CertificateDraft{
		EnergySource: "solar", Details: "rooftop array", Price: 1000, ImageURL: "http://x/img.png", Owner: &owner,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c.ID)
	assert.Equal(t, int64(5_000), c.CreatedAt)
	require.NotNil(t, c.Owner)
	assert.Equal(t, "alice", *c.Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppend_ClampsCreatedAtAndStoresNullOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1_000)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qLock).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(qMax).WillReturnRows(sqlmock.NewRows([]string{"next", "last"}).AddRow(int64(0), int64(9_000)))
	mock.ExpectExec(qInsert).
		WithArgs(int64(0), "wind", "", int64(0), "", nil, int64(9_000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, err := repo.Append(context.Background(), &models.CertificateDraft{EnergySource: "wind"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), c.ID)
	assert.Equal(t, int64(9_000), c.CreatedAt)
	assert.Nil(t, c.Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppend_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qLock).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(qMax).WillReturnRows(sqlmock.NewRows([]string{"next", "last"}).AddRow(int64(0), int64(0)))
	mock.ExpectExec(qInsert).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	c, err := repo.Append(context.Background(), &models.CertificateDraft{EnergySource: "wind"})
	require.Nil(t, c)
	require.ErrorContains(t, err, "db error: disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppend_LockErrorRollsBack(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qLock).WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	_, err := repo.Append(context.Background(), &models.CertificateDraft{EnergySource: "wind"})
	require.ErrorContains(t, err, "advisory lock error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppend_MaxQueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qLock).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(qMax).WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	_, err := repo.Append(context.Background(), &models.CertificateDraft{EnergySource: "wind"})
	require.ErrorContains(t, err, "db error: relation does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "energy_source", "details", "price", "image_url", "owner", "created_at"}).
		AddRow(int64(0), "solar", "a", int64(10), "http://x/a.png", "alice", int64(100)).
		AddRow(int64(1), "wind", "b", int64(20), "", nil, int64(200))
	mock.ExpectQuery(qList).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, uint64(0), list[0].ID)
	require.NotNil(t, list[0].Owner)
	assert.Equal(t, "alice", *list[0].Owner)
	assert.Equal(t, int64(100), list[0].CreatedAt)

	assert.Equal(t, uint64(1), list[1].ID)
	assert.Equal(t, "wind", list[1].EnergySource)
	assert.Nil(t, list[1].Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	mock.ExpectQuery(qList).WillReturnRows(sqlmock.NewRows([]string{"id", "energy_source", "details", "price", "image_url", "owner", "created_at"}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPostgresList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	mock.ExpectQuery(qList).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error: db down")
}

func TestPostgresList_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "energy_source", "details", "price", "image_url", "owner", "created_at"}).
		AddRow("not-a-number", "solar", "a", int64(10), "", nil, int64(100))
	mock.ExpectQuery(qList).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "db error")
}

func TestPostgresList_RowsError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, 1)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "energy_source", "details", "price", "image_url", "owner", "created_at"}).
		AddRow(int64(0), "solar", "a", int64(10), "", nil, int64(100)).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(qList).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "broken row")
}
