package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/logger"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/internal/pkg/security"
	"github.com/svaraj/bizdesk/internal/utils"
	"github.com/svaraj/bizdesk/services/auth"
)

// SendOTP issues a new OTP for the given phone and purpose. The raw code is
// handed to the SMS gateway and never returned to the caller.
func (u *AuthUC) SendOTP(ctx context.Context, phone string, purpose models.OTPPurpose) (*models.SendOTPResponse, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidPhone, err)
	}
	if !purpose.Valid() {
		return nil, fmt.Errorf("%w: %q", auth.ErrInvalidPurpose, purpose)
	}

	// Issuance cap: fail closed when the count is unavailable
	recent, err := u.authRepo.CountRecentOTPRequests(ctx, normalized, purpose, u.rateWindow())
	if err != nil {
		return nil, fmt.Errorf("failed to count recent OTP requests: %w", err)
	}
	if recent >= u.cfg.OTP.MaxPerWindow {
		return nil, auth.ErrRateLimited
	}

	code, err := security.GenerateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	hash, err := security.HashOTP(code, u.cfg.OTP.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash OTP code: %w", err)
	}

	now := u.now()
	expiry := u.otpExpiry()
	req := &models.OTPRequest{
		ID:        uuid.New(),
		Phone:     normalized,
		OTPHash:   hash,
		Purpose:   purpose,
		ExpiresAt: now.Add(expiry),
		CreatedAt: now,
	}

	if err := u.authRepo.CreateOTPRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create OTP request: %w", err)
	}

	// Best-effort dispatch; the OTP request stands even if the SMS fails
	if err := u.authGW.PublishOTPSMS(ctx, normalized, code, expiry); err != nil {
		logger.Warn("Failed to dispatch OTP SMS",
			logger.String("otp_id", req.ID.String()),
			logger.Err(err))
	}

	return &models.SendOTPResponse{
		OTPID:     req.ID.String(),
		ExpiresIn: int(expiry.Seconds()),
		Message:   "OTP sent successfully",
	}, nil
}

// checkOTP runs one verification attempt against a stored OTP request.
// Unknown ids, phone mismatches and already consumed requests all collapse
// into a plain invalid result; only store failures surface as errors.
func (u *AuthUC) checkOTP(ctx context.Context, otpID uuid.UUID, phone, code string) (models.OTPVerification, error) {
	req, err := u.authRepo.GetOTPRequest(ctx, otpID)
	if err != nil {
		if errors.Is(err, auth.ErrOTPRequestNotFound) {
			return models.OTPVerification{}, nil
		}
		return models.OTPVerification{}, fmt.Errorf("failed to load OTP request: %w", err)
	}

	if req.Phone != phone || req.VerifiedAt != nil {
		return models.OTPVerification{}, nil
	}

	if !u.now().Before(req.ExpiresAt) {
		return models.OTPVerification{Expired: true}, nil
	}

	if req.Attempts >= u.cfg.OTP.MaxAttempts {
		return models.OTPVerification{MaxAttemptsExceeded: true}, nil
	}

	if !security.VerifyOTPHash(code, req.OTPHash) {
		if _, err := u.authRepo.IncrementOTPAttempts(ctx, otpID, u.cfg.OTP.MaxAttempts); err != nil {
			return models.OTPVerification{}, fmt.Errorf("failed to record OTP attempt: %w", err)
		}
		return models.OTPVerification{}, nil
	}

	if err := u.authRepo.MarkOTPVerified(ctx, otpID); err != nil {
		if errors.Is(err, auth.ErrOTPRequestNotFound) {
			// Lost a verification race; the request is already consumed
			return models.OTPVerification{}, nil
		}
		return models.OTPVerification{}, fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	return models.OTPVerification{Valid: true}, nil
}

// isBootstrapCredential reports whether the supplied phone+code pair is the
// environment-injected superadmin bootstrap credential. It is only honored
// while no superadmin account exists, which invalidates it after first use.
func (u *AuthUC) isBootstrapCredential(ctx context.Context, phone, code string) (bool, error) {
	cfg := u.cfg.Bootstrap
	if cfg.SuperadminPhone == "" || cfg.SuperadminSecret == "" {
		return false, nil
	}
	if phone != cfg.SuperadminPhone {
		return false, nil
	}
	if !security.ConstantTimeEquals(code, cfg.SuperadminSecret) {
		return false, nil
	}

	exists, err := u.authRepo.SuperadminExists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing superadmin: %w", err)
	}
	return !exists, nil
}

// VerifyOTP validates the supplied code, creating the user on first login,
// and issues a token pair. Expiry and attempt exhaustion are distinguished
// for the caller here, unlike inside the engine.
func (u *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, ipAddress string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidPhone, err)
	}

	bootstrap, err := u.isBootstrapCredential(ctx, normalized, req.OTP)
	if err != nil {
		return nil, err
	}

	if !bootstrap {
		otpID, err := uuid.Parse(req.OTPID)
		if err != nil {
			return nil, auth.ErrInvalidOTP
		}

		result, err := u.checkOTP(ctx, otpID, normalized, req.OTP)
		if err != nil {
			return nil, err
		}
		switch {
		case result.Expired:
			return nil, auth.ErrOTPExpired
		case result.MaxAttemptsExceeded:
			return nil, auth.ErrOTPAttemptsExhausted
		case !result.Valid:
			return nil, auth.ErrInvalidOTP
		}
	}

	user, isNew, err := u.loginUser(ctx, normalized, bootstrap)
	if err != nil {
		return nil, err
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, err
	}

	if _, err := u.persistRefreshToken(ctx, user.ID, pair.RefreshToken, req.DeviceInfo, ipAddress); err != nil {
		return nil, err
	}

	if req.DeviceInfo != nil && req.DeviceInfo.DeviceID != "" {
		if err := u.touchSession(ctx, user.ID, req.DeviceInfo, ipAddress); err != nil {
			return nil, err
		}
	}

	event := &models.UserLoginEvent{
		UserID:    user.ID.String(),
		Phone:     user.Phone,
		IsNewUser: isNew,
		LoginAt:   u.now(),
	}
	if req.DeviceInfo != nil {
		event.DeviceID = req.DeviceInfo.DeviceID
	}
	if err := u.authGW.PublishUserLogin(ctx, event); err != nil {
		logger.Warn("Failed to publish user login event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return &models.AuthResponse{
		User:      user,
		Tokens:    *pair,
		IsNewUser: isNew,
	}, nil
}

// loginUser finds or creates the account for a verified phone. The
// phone_verified and is_superadmin flags only ever go up in this flow.
func (u *AuthUC) loginUser(ctx context.Context, phone string, grantSuperadmin bool) (*models.User, bool, error) {
	user, err := u.authRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return nil, false, fmt.Errorf("failed to look up user: %w", err)
		}

		now := u.now()
		user = &models.User{
			ID:            uuid.New(),
			Phone:         phone,
			PhoneVerified: true,
			IsSuperadmin:  grantSuperadmin,
			Status:        models.UserStatusActive,
			LastLoginAt:   &now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return user, true, nil
	}

	if err := u.authRepo.RecordLogin(ctx, user.ID, grantSuperadmin); err != nil {
		return nil, false, fmt.Errorf("failed to record login: %w", err)
	}

	now := u.now()
	user.PhoneVerified = true
	user.LastLoginAt = &now
	if grantSuperadmin {
		user.IsSuperadmin = true
	}

	return user, false, nil
}
