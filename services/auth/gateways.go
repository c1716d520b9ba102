package auth

import (
	"context"
	"time"

	"github.com/svaraj/bizdesk/internal/pkg/models"
)

// AuthGW defines the outbound gateway operations of the auth service.
// Both are best-effort: a failed publish never rolls back the flow that
// triggered it.
type AuthGW interface {
	PublishOTPSMS(ctx context.Context, phone, code string, expiresIn time.Duration) error
	PublishUserLogin(ctx context.Context, event *models.UserLoginEvent) error
}
