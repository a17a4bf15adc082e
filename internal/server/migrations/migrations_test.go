package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_certificates.sql", "00002_create_sessions.sql"}, names)

	for _, n := range names {
		data, err := fs.ReadFile(Migrations, n)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "-- +goose Up"), n)
		assert.True(t, strings.Contains(string(data), "-- +goose Down"), n)
	}
}
