package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// AuthUC defines the auth business logic surface consumed by handlers
type AuthUC interface {
	SendOTP(ctx context.Context, phone string, purpose models.OTPPurpose) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, ipAddress string) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context, rawToken string) (*models.TokenPair, error)

	GetUserSessions(ctx context.Context, userID uuid.UUID) ([]*models.UserSession, error)
	LogoutSession(ctx context.Context, sessionID, userID uuid.UUID) error
	LogoutAllSessions(ctx context.Context, userID uuid.UUID) error
}
