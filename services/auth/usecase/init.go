package usecase

import (
	"time"

	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/services/auth"
)

// AuthUC implements the auth business logic
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config
	now      func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock overrides the usecase clock for deterministic tests
func (u *AuthUC) WithClock(clock func() time.Time) {
	if clock != nil {
		u.now = clock
	}
}

func (u *AuthUC) otpExpiry() time.Duration {
	return time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute
}

func (u *AuthUC) rateWindow() time.Duration {
	return time.Duration(u.cfg.OTP.RateWindowMinutes) * time.Minute
}

func (u *AuthUC) accessExpiry() time.Duration {
	return time.Duration(u.cfg.JWT.AccessExpiryMins) * time.Minute
}

func (u *AuthUC) refreshExpiry() time.Duration {
	return time.Duration(u.cfg.JWT.RefreshExpiryDays) * 24 * time.Hour
}
