package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_SqliteCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "app.db")

	database, err := Init("sqlite", path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	var count int
	err = database.Get(&count, "SELECT COUNT(*) FROM users")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestInit_UnknownDriver(t *testing.T) {
	_, err := Init("nosuch", "dsn")
	assert.Error(t, err)
}
