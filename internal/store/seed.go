package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eduplay/console/internal/model"
)

// SeedUsername and SeedPassword are the credentials of the default admin
// account created by ResetAndSeed.
const (
	SeedUsername = "admin"
	SeedPassword = "admin123"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

// ResetAndSeed wipes every collection and repopulates it with sample data:
// one default super admin, six users, five games, builds for the first three
// games, three release notes, and five revenue entries. adminPasswordHash is
// the pre-hashed password for the default admin account.
func (s *Store) ResetAndSeed(ctx context.Context, adminPasswordHash string) error {
	for _, table := range []string{"admins", "users", "games", "builds", "release_notes", "revenue"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	admin := model.Admin{
		ID:           uuid.NewString(),
		Email:        "admin@eduplay.com",
		Username:     SeedUsername,
		FullName:     "System Administrator",
		Role:         model.RoleSuperAdmin,
		Status:       "active",
		CreatedAt:    NowISO(),
		PasswordHash: adminPasswordHash,
	}
	const adminQ = `INSERT INTO admins
		(id, email, username, full_name, role, status, created_at, last_login, hashed_password)
		VALUES
		(:id, :email, :username, :full_name, :role, :status, :created_at, :last_login, :hashed_password)`
	if _, err := s.db.NamedExecContext(ctx, adminQ, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	users := []model.User{
		{Email: "emma.wilson@school.edu", Username: "emma_w", FullName: "Emma Wilson", Plan: model.PlanUpgraded, Age: intptr(12), School: strptr("Lincoln Elementary"), Grade: strptr("6th"), TotalGamesPlayed: 45, TotalScore: 8750, Bio: strptr("Love playing math games!")},
		{Email: "oliver.brown@school.edu", Username: "oliver_b", FullName: "Oliver Brown", Plan: model.PlanStandard, Age: intptr(10), School: strptr("Washington Elementary"), Grade: strptr("4th"), TotalGamesPlayed: 23, TotalScore: 4200},
		{Email: "sophia.davis@school.edu", Username: "sophia_d", FullName: "Sophia Davis", Plan: model.PlanUpgraded, Age: intptr(11), School: strptr("Roosevelt Middle"), Grade: strptr("5th"), TotalGamesPlayed: 67, TotalScore: 12340, Bio: strptr("Gaming enthusiast and top scorer!")},
		{Email: "lucas.miller@school.edu", Username: "lucas_m", FullName: "Lucas Miller", Plan: model.PlanStandard, Age: intptr(9), School: strptr("Jefferson Elementary"), Grade: strptr("3rd"), TotalGamesPlayed: 15, TotalScore: 2890},
		{Email: "ava.garcia@school.edu", Username: "ava_g", FullName: "Ava Garcia", Plan: model.PlanUpgraded, Age: intptr(13), School: strptr("Lincoln Elementary"), Grade: strptr("7th"), TotalGamesPlayed: 89, TotalScore: 15670},
		{Email: "noah.martinez@school.edu", Username: "noah_m", FullName: "Noah Martinez", Plan: model.PlanStandard, Age: intptr(10), School: strptr("Washington Elementary"), Grade: strptr("4th"), TotalGamesPlayed: 31, TotalScore: 5420},
	}
	for i := range users {
		if err := s.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	games := []model.Game{
		{Name: "Math Blast", Description: "Fast-paced arithmetic game", Category: "Math", Difficulty: "Easy", Status: "live", Version: "2.1.0", PlayCount: 1250, Rating: 4.5},
		{Name: "Word Quest", Description: "Spelling and vocabulary adventure", Category: "Language", Difficulty: "Medium", Status: "live", Version: "1.8.3", PlayCount: 890, Rating: 4.3},
		{Name: "Science Lab", Description: "Interactive science experiments", Category: "Science", Difficulty: "Hard", Status: "beta", Version: "0.9.1", PlayCount: 234, Rating: 4.7},
		{Name: "Geography Master", Description: "Learn countries and capitals", Category: "Geography", Difficulty: "Medium", Status: "live", Version: "3.0.2", PlayCount: 567, Rating: 4.2},
		{Name: "Logic Puzzles", Description: "Brain-teasing logic challenges", Category: "Logic", Difficulty: "Hard", Status: "development", Version: "0.5.0", PlayCount: 45, Rating: 4.6},
	}
	for i := range games {
		if err := s.CreateGame(ctx, &games[i]); err != nil {
			return fmt.Errorf("seed games: %w", err)
		}
	}

	for _, game := range games[:3] {
		build := model.Build{
			GameID:   game.ID,
			GameName: game.Name,
			Version:  game.Version,
			Status:   "completed",
			Notes:    strptr("Stable release"),
		}
		if err := s.CreateBuild(ctx, &build); err != nil {
			return fmt.Errorf("seed builds: %w", err)
		}
	}

	notes := []model.ReleaseNote{
		{Title: "New Game: Logic Puzzles", Description: "Added new puzzle game with 50 levels", Version: "4.0.0", Type: "feature", Status: "planned"},
		{Title: "Performance Improvements", Description: "Optimized game loading times", Version: "3.9.1", Type: "bugfix", Status: "released", ReleaseDate: strptr(NowISO())},
		{Title: "Security Patch", Description: "Fixed authentication vulnerabilities", Version: "3.9.2", Type: "security", Status: "in-progress"},
	}
	for i := range notes {
		if err := s.CreateReleaseNote(ctx, &notes[i]); err != nil {
			return fmt.Errorf("seed release notes: %w", err)
		}
	}

	entries := []model.Revenue{
		{Date: "2025-01-15", Amount: 5.99, Source: "emma_w", Description: "Monthly subscription upgrade", Type: "subscription"},
		{Date: "2025-01-18", Amount: 4.99, Source: "sophia_d", Description: "Premium game pack", Type: "purchase"},
		{Date: "2025-01-20", Amount: 5.99, Source: "ava_g", Description: "Monthly subscription upgrade", Type: "subscription"},
		{Date: "2025-01-22", Amount: 10.00, Source: "anonymous", Description: "Platform support", Type: "donation"},
		{Date: "2025-01-25", Amount: 2.99, Source: "noah_m", Description: "Science Lab DLC", Type: "purchase"},
	}
	for i := range entries {
		if err := s.CreateRevenue(ctx, &entries[i]); err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
	}

	return nil
}
