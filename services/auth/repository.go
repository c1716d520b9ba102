package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// AuthRepo defines the persistence operations of the auth service
type AuthRepo interface {
	// OTP requests
	CreateOTPRequest(ctx context.Context, req *models.OTPRequest) error
	GetOTPRequest(ctx context.Context, id uuid.UUID) (*models.OTPRequest, error)
	CountRecentOTPRequests(ctx context.Context, phone string, purpose models.OTPPurpose, window time.Duration) (int, error)
	IncrementOTPAttempts(ctx context.Context, id uuid.UUID, maxAttempts int) (int, error)
	MarkOTPVerified(ctx context.Context, id uuid.UUID) error

	// Users
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	RecordLogin(ctx context.Context, userID uuid.UUID, grantSuperadmin bool) error
	SuperadminExists(ctx context.Context) (bool, error)

	// Refresh tokens
	StoreRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
	RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// Sessions
	FindOrCreateSession(ctx context.Context, session *models.UserSession) (*models.UserSession, error)
	ListActiveSessions(ctx context.Context, userID uuid.UUID) ([]*models.UserSession, error)
	DeactivateSession(ctx context.Context, sessionID, userID uuid.UUID) error
	DeactivateAllSessions(ctx context.Context, userID uuid.UUID) error
}
