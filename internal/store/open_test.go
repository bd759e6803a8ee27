package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/adatasks/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, d *DB, name string) bool {
	t.Helper()
	var n int
	err := d.Conn().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_SQLiteRunsMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tasks.db")

	d, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, dbx.DialectSQLite, d.Dialect)
	assert.True(t, tableExists(t, d, "goose_db_version"))
	assert.True(t, tableExists(t, d, "kv_store"))

	require.NoError(t, d.Repo.Set(ctx, "k", []byte("v")))
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tasks.db")

	d, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, New(d.Repo, DefaultNamespace).SetJSON(ctx, KeyCurrentList, "pessoal"))
	require.NoError(t, d.Close())

	d, err = Open(ctx, "sqlite", dsn)
	require.NoError(t, err, "migrations must be idempotent")
	defer d.Close()

	var id string
	found, err := New(d.Repo, DefaultNamespace).GetJSON(ctx, KeyCurrentList, &id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pessoal", id)
}

func TestOpen_Memory(t *testing.T) {
	d, err := Open(context.Background(), DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepository{}, d.Repo)
	assert.Nil(t, d.Conn())
	assert.NoError(t, d.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	require.ErrorContains(t, err, "unsupported sql driver")
}
