package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/services/auth"
)

// GetUserByPhone retrieves a user by normalized phone number
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `
		SELECT id, phone, full_name, phone_verified, is_superadmin, status, last_login_at, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, phone, full_name, phone_verified, is_superadmin, status, last_login_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// CreateUser creates a new user in the database. Fields already stamped by
// the caller are kept so the persisted row matches the returned model.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	query := `
		INSERT INTO users (id, phone, full_name, phone_verified, is_superadmin, status, last_login_at, created_at, updated_at)
		VALUES (:id, :phone, :full_name, :phone_verified, :is_superadmin, :status, :last_login_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// RecordLogin stamps last_login_at and marks the phone verified. The
// superadmin flag only ever flips upward: once granted it is never cleared
// by a later ordinary login.
func (r *AuthRepo) RecordLogin(ctx context.Context, userID uuid.UUID, grantSuperadmin bool) error {
	query := `
		UPDATE users
		SET last_login_at = $2,
			phone_verified = TRUE,
			is_superadmin = is_superadmin OR $3,
			updated_at = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, userID, time.Now(), grantSuperadmin)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// SuperadminExists reports whether any superadmin user has been provisioned
func (r *AuthRepo) SuperadminExists(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE is_superadmin = TRUE)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query)
	if err != nil {
		return false, fmt.Errorf("failed to check superadmin: %w", err)
	}
	return exists, nil
}
