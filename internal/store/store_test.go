package store

import (
	"context"
	"errors"
	"testing"

	"github.com/eduplay/console/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("") // in-memory
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAdmin() *model.Admin {
	return &model.Admin{
		Email:        "admin@eduplay.com",
		Username:     "admin",
		FullName:     "System Administrator",
		Role:         model.RoleSuperAdmin,
		Status:       "active",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	}
}

func TestAdminCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	admin := testAdmin()
	if err := s.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.ID == "" || admin.CreatedAt == "" {
		t.Fatal("CreateAdmin did not populate ID and CreatedAt")
	}

	got, err := s.GetAdmin(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetAdmin: %v", err)
	}
	if got.Username != "admin" || got.PasswordHash != admin.PasswordHash {
		t.Errorf("GetAdmin returned wrong record: %+v", got)
	}

	byName, err := s.GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if byName.ID != admin.ID {
		t.Error("GetAdminByUsername returned a different admin")
	}

	if got.LastLogin != nil {
		t.Error("fresh admin should have no last_login")
	}
	if err := s.SetAdminLastLogin(ctx, admin.ID); err != nil {
		t.Fatalf("SetAdminLastLogin: %v", err)
	}
	got, _ = s.GetAdmin(ctx, admin.ID)
	if got.LastLogin == nil {
		t.Error("last_login not stamped")
	}

	newName := "Root Administrator"
	updated, err := s.UpdateAdmin(ctx, admin.ID, model.AdminUpdate{FullName: &newName}, nil)
	if err != nil {
		t.Fatalf("UpdateAdmin: %v", err)
	}
	if updated.FullName != newName {
		t.Errorf("FullName = %q, want %q", updated.FullName, newName)
	}
	if updated.Email != admin.Email {
		t.Error("partial update touched an unrelated field")
	}

	if err := s.DeleteAdmin(ctx, admin.ID); err != nil {
		t.Fatalf("DeleteAdmin: %v", err)
	}
	if _, err := s.GetAdmin(ctx, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAdmin after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteAdmin(ctx, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteAdmin: err = %v, want ErrNotFound", err)
	}
}

func TestCreateAdmin_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateAdmin(ctx, testAdmin()); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	dupEmail := testAdmin()
	dupEmail.Username = "other"
	if err := s.CreateAdmin(ctx, dupEmail); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate email: err = %v, want ErrDuplicate", err)
	}

	dupName := testAdmin()
	dupName.Email = "other@eduplay.com"
	if err := s.CreateAdmin(ctx, dupName); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate username: err = %v, want ErrDuplicate", err)
	}
}

func TestUserCRUDAndCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	last4 := "4242"
	user := &model.User{
		Email:           "emma.wilson@school.edu",
		Username:        "emma_w",
		FullName:        "Emma Wilson",
		Plan:            model.PlanUpgraded,
		CreditCardLast4: &last4,
	}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == "" || user.JoinedDate == "" {
		t.Fatal("CreateUser did not populate ID and JoinedDate")
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.CreditCardLast4 == nil || *got.CreditCardLast4 != "4242" {
		t.Error("billing field not persisted")
	}

	score := 9000
	updated, err := s.UpdateUser(ctx, user.ID, model.UserUpdate{TotalScore: &score})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.TotalScore != 9000 {
		t.Errorf("TotalScore = %d, want 9000", updated.TotalScore)
	}
	if updated.Username != "emma_w" {
		t.Error("partial update touched an unrelated field")
	}

	if err := s.CreateUser(ctx, &model.User{Email: "b@school.edu", Username: "b"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	total, err := s.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if total != 2 {
		t.Errorf("CountUsers = %d, want 2", total)
	}
	upgraded, err := s.CountUsersByPlan(ctx, model.PlanUpgraded)
	if err != nil {
		t.Fatalf("CountUsersByPlan: %v", err)
	}
	if upgraded != 1 {
		t.Errorf("upgraded count = %d, want 1", upgraded)
	}

	if err := s.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := s.GetUser(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser after delete: err = %v, want ErrNotFound", err)
	}
}

func TestGameReplaceStampsUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	game := &model.Game{Name: "Math Blast", Description: "d", Category: "Math", Difficulty: "Easy"}
	if err := s.CreateGame(ctx, game); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	game.Version = "2.0.0"
	updated, err := s.ReplaceGame(ctx, game.ID, *game)
	if err != nil {
		t.Fatalf("ReplaceGame: %v", err)
	}
	if updated.Version != "2.0.0" {
		t.Errorf("Version = %q, want 2.0.0", updated.Version)
	}
	if updated.UpdatedAt == "" {
		t.Error("ReplaceGame did not stamp updated_at")
	}

	if _, err := s.ReplaceGame(ctx, "missing", *game); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplaceGame on missing id: err = %v, want ErrNotFound", err)
	}
}

func TestRevenueTotal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Empty ledger sums to zero, not an error.
	total, err := s.TotalRevenue(ctx)
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total != 0 {
		t.Errorf("empty TotalRevenue = %v, want 0", total)
	}

	for _, amount := range []float64{5.99, 4.99, 10.00} {
		rev := &model.Revenue{Date: "2025-01-15", Amount: amount, Source: "s", Description: "d", Type: "purchase"}
		if err := s.CreateRevenue(ctx, rev); err != nil {
			t.Fatalf("CreateRevenue: %v", err)
		}
	}

	total, err = s.TotalRevenue(ctx)
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total < 20.97 || total > 20.99 {
		t.Errorf("TotalRevenue = %v, want ~20.98", total)
	}
}
