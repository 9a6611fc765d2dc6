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

// CreateUser inserts a new user profile. The ID and JoinedDate fields on
// user are populated before insert.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	if user.JoinedDate == "" {
		user.JoinedDate = NowISO()
	}
	if user.Plan == "" {
		user.Plan = model.PlanStandard
	}
	if user.Status == "" {
		user.Status = "active"
	}

	const q = `INSERT INTO users
		(id, email, username, full_name, plan, status, avatar, bio, age, school, grade,
		 total_games_played, total_score, joined_date, last_login, subscription_expires,
		 credit_card_last4, credit_card_type, billing_address)
		VALUES
		(:id, :email, :username, :full_name, :plan, :status, :avatar, :bio, :age, :school, :grade,
		 :total_games_played, :total_score, :joined_date, :last_login, :subscription_expires,
		 :credit_card_last4, :credit_card_type, :billing_address)`

	if _, err := s.db.NamedExecContext(ctx, q, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser fetches a user by ID. Returns ErrNotFound if absent.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// ListUsers returns all user profiles ordered by join date.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := s.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY joined_date`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update and returns the updated record, or
// ErrNotFound if the user does not exist.
func (s *Store) UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	set := []string{}
	args := []interface{}{}

	str := func(col string, val *string) {
		if val != nil {
			set = append(set, col+" = ?")
			args = append(args, *val)
		}
	}
	num := func(col string, val *int) {
		if val != nil {
			set = append(set, col+" = ?")
			args = append(args, *val)
		}
	}
	str("email", upd.Email)
	str("username", upd.Username)
	str("full_name", upd.FullName)
	str("plan", upd.Plan)
	str("status", upd.Status)
	str("avatar", upd.Avatar)
	str("bio", upd.Bio)
	num("age", upd.Age)
	str("school", upd.School)
	str("grade", upd.Grade)
	num("total_games_played", upd.TotalGamesPlayed)
	num("total_score", upd.TotalScore)
	str("subscription_expires", upd.SubscriptionExpires)
	str("credit_card_last4", upd.CreditCardLast4)
	str("credit_card_type", upd.CreditCardType)
	str("billing_address", upd.BillingAddress)

	if len(set) > 0 {
		args = append(args, id)
		q := `UPDATE users SET ` + strings.Join(set, ", ") + ` WHERE id = ?`
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	return s.GetUser(ctx, id)
}

// DeleteUser removes a user profile. Returns ErrNotFound if absent.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUsers returns the total number of user profiles.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// CountUsersByPlan returns the number of users on the given plan.
func (s *Store) CountUsersByPlan(ctx context.Context, plan string) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE plan = ?`, plan); err != nil {
		return 0, fmt.Errorf("count users by plan: %w", err)
	}
	return count, nil
}
