package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// touchSession upserts the device session for an authenticated contact:
// the active row for (user, device) gets its last_active_at bumped, or a
// new session is created.
func (u *AuthUC) touchSession(ctx context.Context, userID uuid.UUID, deviceInfo *models.DeviceInfo, ipAddress string) error {
	session := &models.UserSession{
		UserID:     userID,
		DeviceID:   deviceInfo.DeviceID,
		DeviceName: deviceInfo.DeviceName,
		DeviceOS:   deviceInfo.DeviceOS,
		AppVersion: deviceInfo.AppVersion,
		IPAddress:  ipAddress,
	}

	if _, err := u.authRepo.FindOrCreateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// GetUserSessions lists the user's active device sessions, most recently
// active first.
func (u *AuthUC) GetUserSessions(ctx context.Context, userID uuid.UUID) ([]*models.UserSession, error) {
	sessions, err := u.authRepo.ListActiveSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// LogoutSession deactivates a single session. Sessions not owned by the
// caller surface as auth.ErrSessionNotFound.
func (u *AuthUC) LogoutSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	return u.authRepo.DeactivateSession(ctx, sessionID, userID)
}

// LogoutAllSessions deactivates every session and revokes every refresh
// token for the user, so no previously issued refresh token survives.
func (u *AuthUC) LogoutAllSessions(ctx context.Context, userID uuid.UUID) error {
	if err := u.authRepo.DeactivateAllSessions(ctx, userID); err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}
	if err := u.authRepo.RevokeAllRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
