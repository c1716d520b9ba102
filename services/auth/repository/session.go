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

// FindOrCreateSession bumps the active session for (user, device) when one
// exists and creates a fresh row otherwise
func (r *AuthRepo) FindOrCreateSession(ctx context.Context, session *models.UserSession) (*models.UserSession, error) {
	now := time.Now()

	updateQuery := `
		UPDATE user_sessions
		SET device_name = $3,
			device_os = $4,
			app_version = $5,
			ip_address = $6,
			last_active_at = $7
		WHERE user_id = $1 AND device_id = $2 AND is_active = TRUE
		RETURNING id, user_id, device_id, device_name, device_os, app_version, ip_address, is_active, last_active_at, created_at
	`

	var updated models.UserSession
	err := r.db.GetContext(ctx, &updated, updateQuery,
		session.UserID,
		session.DeviceID,
		session.DeviceName,
		session.DeviceOS,
		session.AppVersion,
		session.IPAddress,
		now,
	)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	session.ID = uuid.New()
	session.IsActive = true
	session.LastActiveAt = now
	session.CreatedAt = now

	insertQuery := `
		INSERT INTO user_sessions (id, user_id, device_id, device_name, device_os, app_version, ip_address, is_active, last_active_at, created_at)
		VALUES (:id, :user_id, :device_id, :device_name, :device_os, :app_version, :ip_address, :is_active, :last_active_at, :created_at)
	`
	_, err = r.db.NamedExecContext(ctx, insertQuery, session)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return session, nil
}

// ListActiveSessions returns the user's active sessions, most recently
// active first
func (r *AuthRepo) ListActiveSessions(ctx context.Context, userID uuid.UUID) ([]*models.UserSession, error) {
	query := `
		SELECT id, user_id, device_id, device_name, device_os, app_version, ip_address, is_active, last_active_at, created_at
		FROM user_sessions
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY last_active_at DESC
	`

	sessions := []*models.UserSession{}
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DeactivateSession deactivates one session, scoped to the owning user so a
// caller cannot log out someone else's device
func (r *AuthRepo) DeactivateSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	query := `
		UPDATE user_sessions
		SET is_active = FALSE
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

// DeactivateAllSessions deactivates every active session for a user
func (r *AuthRepo) DeactivateAllSessions(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE user_sessions
		SET is_active = FALSE
		WHERE user_id = $1 AND is_active = TRUE
	`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}
	return nil
}
