package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recmarket/internal/server/config"
	"github.com/dmitrijs2005/recmarket/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recmarket/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestNewRepositoryManager_EmptyDSNIsMemory(t *testing.T) {
	rm, err := newRepositoryManager(context.Background(), testConfig(), timex.SystemClock{})
	require.NoError(t, err)
	assert.IsType(t, &repomanager.InMemoryRepositoryManager{}, rm)
}

func TestNewRepositoryManager_DSNIsPostgres(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	openPostgres = func(ctx context.Context, dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres://u:p@localhost/recs", dsn)
		return db, nil
	}

	c := testConfig()
	c.DatabaseDSN = "postgres://u:p@localhost/recs"
	rm, err := newRepositoryManager(context.Background(), c, timex.SystemClock{})
	require.NoError(t, err)
	assert.IsType(t, &repomanager.PostgresRepositoryManager{}, rm)
}

func TestNewApp_DBOpenError(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	openPostgres = func(ctx context.Context, dsn string) (*sql.DB, error) {
		return nil, errors.New("refused")
	}

	c := testConfig()
	c.DatabaseDSN = "postgres://nowhere"
	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error: refused")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
