package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eduplay/console/internal/model"
)

// ---------------------------------------------------------------------------
// Games
// ---------------------------------------------------------------------------

// CreateGame inserts a new game catalog entry.
func (s *Store) CreateGame(ctx context.Context, game *model.Game) error {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	now := NowISO()
	if game.CreatedAt == "" {
		game.CreatedAt = now
	}
	if game.UpdatedAt == "" {
		game.UpdatedAt = now
	}
	if game.Status == "" {
		game.Status = "development"
	}
	if game.Version == "" {
		game.Version = "1.0.0"
	}

	const q = `INSERT INTO games
		(id, name, description, category, difficulty, status, version, play_count, rating, created_at, updated_at)
		VALUES
		(:id, :name, :description, :category, :difficulty, :status, :version, :play_count, :rating, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, game); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// GetGame fetches a game by ID. Returns ErrNotFound if absent.
func (s *Store) GetGame(ctx context.Context, id string) (*model.Game, error) {
	var game model.Game
	err := s.db.GetContext(ctx, &game, `SELECT * FROM games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return &game, nil
}

// ListGames returns the full game catalog ordered by creation time.
func (s *Store) ListGames(ctx context.Context) ([]model.Game, error) {
	games := []model.Game{}
	if err := s.db.SelectContext(ctx, &games, `SELECT * FROM games ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// ReplaceGame overwrites a game record in full and stamps updated_at.
// Returns the stored record, or ErrNotFound if the game does not exist.
func (s *Store) ReplaceGame(ctx context.Context, id string, game model.Game) (*model.Game, error) {
	game.ID = id
	game.UpdatedAt = NowISO()

	const q = `UPDATE games SET
		name = :name, description = :description, category = :category,
		difficulty = :difficulty, status = :status, version = :version,
		play_count = :play_count, rating = :rating, updated_at = :updated_at
		WHERE id = :id`

	res, err := s.db.NamedExecContext(ctx, q, game)
	if err != nil {
		return nil, fmt.Errorf("replace game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetGame(ctx, id)
}

// DeleteGame removes a game catalog entry. Returns ErrNotFound if absent.
func (s *Store) DeleteGame(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountGames returns the total number of games in the catalog.
func (s *Store) CountGames(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM games`); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Builds
// ---------------------------------------------------------------------------

// CreateBuild inserts a new build record.
func (s *Store) CreateBuild(ctx context.Context, build *model.Build) error {
	if build.ID == "" {
		build.ID = uuid.NewString()
	}
	if build.BuildDate == "" {
		build.BuildDate = NowISO()
	}
	if build.Status == "" {
		build.Status = "pending"
	}

	const q = `INSERT INTO builds
		(id, game_id, game_name, version, status, build_date, notes)
		VALUES
		(:id, :game_id, :game_name, :version, :status, :build_date, :notes)`

	if _, err := s.db.NamedExecContext(ctx, q, build); err != nil {
		return fmt.Errorf("insert build: %w", err)
	}
	return nil
}

// ListBuilds returns all build records ordered by build date, newest first.
func (s *Store) ListBuilds(ctx context.Context) ([]model.Build, error) {
	builds := []model.Build{}
	if err := s.db.SelectContext(ctx, &builds, `SELECT * FROM builds ORDER BY build_date DESC`); err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	return builds, nil
}

// ---------------------------------------------------------------------------
// Release notes
// ---------------------------------------------------------------------------

// CreateReleaseNote inserts a new release note.
func (s *Store) CreateReleaseNote(ctx context.Context, note *model.ReleaseNote) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.CreatedAt == "" {
		note.CreatedAt = NowISO()
	}
	if note.Status == "" {
		note.Status = "planned"
	}

	const q = `INSERT INTO release_notes
		(id, title, description, version, type, status, release_date, created_at)
		VALUES
		(:id, :title, :description, :version, :type, :status, :release_date, :created_at)`

	if _, err := s.db.NamedExecContext(ctx, q, note); err != nil {
		return fmt.Errorf("insert release note: %w", err)
	}
	return nil
}

// ListReleaseNotes returns all release notes ordered by creation time,
// newest first.
func (s *Store) ListReleaseNotes(ctx context.Context) ([]model.ReleaseNote, error) {
	notes := []model.ReleaseNote{}
	if err := s.db.SelectContext(ctx, &notes, `SELECT * FROM release_notes ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("list release notes: %w", err)
	}
	return notes, nil
}

// ---------------------------------------------------------------------------
// Revenue
// ---------------------------------------------------------------------------

// CreateRevenue inserts a new revenue ledger entry.
func (s *Store) CreateRevenue(ctx context.Context, rev *model.Revenue) error {
	if rev.ID == "" {
		rev.ID = uuid.NewString()
	}

	const q = `INSERT INTO revenue
		(id, date, amount, source, description, type)
		VALUES
		(:id, :date, :amount, :source, :description, :type)`

	if _, err := s.db.NamedExecContext(ctx, q, rev); err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

// ListRevenue returns all revenue ledger entries ordered by date.
func (s *Store) ListRevenue(ctx context.Context) ([]model.Revenue, error) {
	entries := []model.Revenue{}
	if err := s.db.SelectContext(ctx, &entries, `SELECT * FROM revenue ORDER BY date`); err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	return entries, nil
}

// TotalRevenue returns the sum of all ledger amounts.
func (s *Store) TotalRevenue(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	if err := s.db.GetContext(ctx, &total, `SELECT SUM(amount) FROM revenue`); err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	return total.Float64, nil
}
