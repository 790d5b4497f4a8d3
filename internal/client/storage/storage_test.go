package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "suite.db")

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	require.True(t, tableExists(t, s.DB, "goose_db_version"))
	require.True(t, tableExists(t, s.DB, "kv"))
}

func TestOpen_InMemoryKVWorks(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.KV.Set(ctx, "k", []byte("v")))
	v, err := s.KV.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "suite.db")

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.KV.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.KV.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "suite.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "kv"))
}

func TestOpen_BadPathFails(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "suite.db")

	_, err := Open(context.Background(), dsn)
	require.Error(t, err)
}
