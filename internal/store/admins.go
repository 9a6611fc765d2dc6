package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/eduplay/console/internal/model"
)

// CreateAdmin inserts a new admin account. The ID and CreatedAt fields on
// admin are populated before insert. Returns ErrDuplicate if the email or
// username is already taken.
func (s *Store) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM admins WHERE email = ? OR username = ?`,
		admin.Email, admin.Username)
	if err != nil {
		return fmt.Errorf("check admin uniqueness: %w", err)
	}
	if count > 0 {
		return ErrDuplicate
	}

	admin.ID = uuid.NewString()
	admin.CreatedAt = NowISO()

	const q = `INSERT INTO admins
		(id, email, username, full_name, role, status, created_at, last_login, hashed_password)
		VALUES
		(:id, :email, :username, :full_name, :role, :status, :created_at, :last_login, :hashed_password)`

	if _, err := s.db.NamedExecContext(ctx, q, admin); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetAdmin fetches an admin by ID. Returns ErrNotFound if absent.
func (s *Store) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}

// GetAdminByUsername fetches an admin by username. Returns ErrNotFound if absent.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return &admin, nil
}

// ListAdmins returns all admin accounts ordered by creation time.
func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	admins := []model.Admin{}
	if err := s.db.SelectContext(ctx, &admins, `SELECT * FROM admins ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// HasAnyAdmin reports whether at least one admin account exists.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}

// UpdateAdmin applies a partial update. Only non-nil fields are written; a
// non-nil PasswordHash (pre-hashed by the caller) replaces the stored hash.
// Returns the updated record, or ErrNotFound if the admin does not exist.
func (s *Store) UpdateAdmin(ctx context.Context, id string, upd model.AdminUpdate, passwordHash *string) (*model.Admin, error) {
	set := []string{}
	args := []interface{}{}

	appendField := func(col string, val *string) {
		if val != nil {
			set = append(set, col+" = ?")
			args = append(args, *val)
		}
	}
	appendField("email", upd.Email)
	appendField("username", upd.Username)
	appendField("full_name", upd.FullName)
	appendField("role", upd.Role)
	appendField("status", upd.Status)
	appendField("hashed_password", passwordHash)

	if len(set) > 0 {
		args = append(args, id)
		q := `UPDATE admins SET ` + strings.Join(set, ", ") + ` WHERE id = ?`
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			if isUniqueViolation(err) {
				return nil, ErrDuplicate
			}
			return nil, fmt.Errorf("update admin: %w", err)
		}
	}

	return s.GetAdmin(ctx, id)
}

// DeleteAdmin removes an admin account. Returns ErrNotFound if absent.
func (s *Store) DeleteAdmin(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAdminLastLogin stamps the admin's last_login with the current time.
func (s *Store) SetAdminLastLogin(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE admins SET last_login = ? WHERE id = ?`, NowISO(), id)
	if err != nil {
		return fmt.Errorf("set admin last login: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
