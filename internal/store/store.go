package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is the embedded document store backing the console. It persists
// admin accounts, user profiles, the game catalog, build records, release
// notes, the revenue ledger, and live-effect delivery records in SQLite.
type Store struct {
	db *sqlx.DB
}

// Open creates a Store rooted at dataDir. Pass empty string for in-memory,
// which is what tests use.
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == "" {
		dsn = ":memory:?_journal_mode=WAL"
	} else {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = filepath.Join(dataDir, "console.db") + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id              TEXT PRIMARY KEY,
	email           TEXT NOT NULL UNIQUE,
	username        TEXT NOT NULL UNIQUE,
	full_name       TEXT NOT NULL,
	role            TEXT NOT NULL DEFAULT 'admin',
	status          TEXT NOT NULL DEFAULT 'active',
	created_at      TEXT NOT NULL,
	last_login      TEXT,
	hashed_password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id                   TEXT PRIMARY KEY,
	email                TEXT NOT NULL,
	username             TEXT NOT NULL,
	full_name            TEXT NOT NULL,
	plan                 TEXT NOT NULL DEFAULT 'Standard',
	status               TEXT NOT NULL DEFAULT 'active',
	avatar               TEXT,
	bio                  TEXT,
	age                  INTEGER,
	school               TEXT,
	grade                TEXT,
	total_games_played   INTEGER NOT NULL DEFAULT 0,
	total_score          INTEGER NOT NULL DEFAULT 0,
	joined_date          TEXT NOT NULL,
	last_login           TEXT,
	subscription_expires TEXT,
	credit_card_last4    TEXT,
	credit_card_type     TEXT,
	billing_address      TEXT
);

CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	category    TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'development',
	version     TEXT NOT NULL DEFAULT '1.0.0',
	play_count  INTEGER NOT NULL DEFAULT 0,
	rating      REAL NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS builds (
	id         TEXT PRIMARY KEY,
	game_id    TEXT NOT NULL,
	game_name  TEXT NOT NULL,
	version    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'pending',
	build_date TEXT NOT NULL,
	notes      TEXT
);

CREATE TABLE IF NOT EXISTS release_notes (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	version      TEXT NOT NULL,
	type         TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'planned',
	release_date TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revenue (
	id          TEXT PRIMARY KEY,
	date        TEXT NOT NULL,
	amount      REAL NOT NULL,
	source      TEXT NOT NULL,
	description TEXT NOT NULL,
	type        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS live_effects (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	effect_type TEXT NOT NULL,
	content     TEXT NOT NULL,
	sent_at     TEXT NOT NULL
);
`
	_, err := s.db.Exec(schema)
	return err
}

// NowISO returns the current UTC instant formatted the way every timestamp in
// the store is persisted and served: an ISO-8601 / RFC-3339 string.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
