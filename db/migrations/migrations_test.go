package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/db/migrations"
)

func TestFS(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	tables := map[string]bool{}
	for _, name := range files {
		data, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		sql := string(data)
		assert.Contains(t, sql, "-- +goose Up", name)
		assert.Contains(t, sql, "-- +goose Down", name)
		for _, table := range []string{"sessions", "verification_sessions"} {
			if strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table+" (") {
				tables[table] = true
			}
		}
	}
	assert.True(t, tables["sessions"])
	assert.True(t, tables["verification_sessions"])
}
