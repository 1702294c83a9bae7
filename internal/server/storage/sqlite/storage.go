// Package sqlite persists users and posts in a single SQLite database.
// The schema is managed by goose migrations embedded into the binary, so a
// fresh database file is initialized on first start.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// startupPragmas применяются к каждому новому соединению.
// foreign_keys держит posts.author_id согласованным с users.id
var startupPragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// Storage implements the user and post storage interfaces over SQLite
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the blog database at dbPath, applies pragmas and
// brings the schema up to date. Use ":memory:" for tests
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Писатель в SQLite всегда один, а блог пишет на каждой регистрации
	// и публикации, поэтому держим единственное соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range startupPragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Storage{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// migrate поднимает схему до актуальной версии из embedded FS
func (s *Storage) migrate() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	goose.SetBaseFS(migrationsFS)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
