// Package storage opens the local SQLite database, applies migrations and
// hands out the repositories built on it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/creativesuite/internal/client/migrations"
	"github.com/dmitrijs2005/creativesuite/internal/client/repositories/kvstore"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store owns the database handle and the repositories on top of it.
type Store struct {
	DB *sql.DB
	KV kvstore.Repository
}

// RunMigrations brings db up to the latest embedded schema. It is safe to
// call on an already migrated database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the SQLite database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serialises writers anyway; one connection keeps in-memory DSNs
	// pointing at a single database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{DB: db, KV: kvstore.NewSQLiteRepository(db)}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
