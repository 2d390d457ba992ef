package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"client.db", "client.db?_foreign_keys=on&_busy_timeout=5000"},
		{"file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{"file:/var/lib/sync/client.db", "file:/var/lib/sync/client.db?_foreign_keys=on&_busy_timeout=5000"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestLocalDBPath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"client.db", "client.db"},
		{"file:/var/lib/sync/client.db?_journal=WAL", "/var/lib/sync/client.db"},
		{"file:x?mode=memory&cache=shared", ""},
		{":memory:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, localDBPath(tt.dsn))
		})
	}
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	assert.NoError(t, createLocalDBFileIfNotExists(""))

	path := t.TempDir() + "/client.db"
	assert.NoError(t, createLocalDBFileIfNotExists(path))
	assert.FileExists(t, path)
}
