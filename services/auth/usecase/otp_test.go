package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/internal/pkg/security"
	"github.com/svaraj/bizdesk/services/auth"
	"github.com/svaraj/bizdesk/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:      "test-access-secret",
			RefreshSecret:     "test-refresh-secret",
			AccessExpiryMins:  15,
			RefreshExpiryDays: 30,
			Issuer:            "bizdesk-test",
		},
		OTP: models.OTPConfig{
			ExpiryMinutes:     5,
			MaxAttempts:       5,
			MaxPerWindow:      3,
			RateWindowMinutes: 60,
			BcryptCost:        4, // minimum cost keeps the suite fast
		},
	}
}

func newTestUC(t *testing.T) (*AuthUC, *mocks.MockAuthRepo, *mocks.MockAuthGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())
	return uc, mockRepo, mockGW
}

// storedOTP builds an unconsumed OTP request holding the bcrypt hash of code
func storedOTP(t *testing.T, phone, code string, expiresAt time.Time) *models.OTPRequest {
	hash, err := security.HashOTP(code, 4)
	require.NoError(t, err)
	return &models.OTPRequest{
		ID:        uuid.New(),
		Phone:     phone,
		OTPHash:   hash,
		Purpose:   models.PurposeLogin,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestSendOTP_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	var dispatchedCode string
	mockGW.EXPECT().
		PublishOTPSMS(gomock.Any(), "9876543210", gomock.Any(), 5*time.Minute).
		DoAndReturn(func(ctx context.Context, phone, code string, expiresIn time.Duration) error {
			dispatchedCode = code
			return nil
		})

	mockRepo.EXPECT().
		CountRecentOTPRequests(gomock.Any(), "9876543210", models.PurposeLogin, time.Hour).
		Return(0, nil)

	var created *models.OTPRequest
	mockRepo.EXPECT().
		CreateOTPRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.OTPRequest) error {
			created = req
			return nil
		})

	resp, err := uc.SendOTP(context.Background(), "+91 98765 43210", models.PurposeLogin)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID.String(), resp.OTPID)
	assert.Equal(t, 300, resp.ExpiresIn)
	assert.Equal(t, "9876543210", created.Phone)
	assert.Len(t, dispatchedCode, security.OTPCodeLength)

	// Only the bcrypt hash of the dispatched code is stored
	assert.NotEqual(t, dispatchedCode, created.OTPHash)
	assert.True(t, security.VerifyOTPHash(dispatchedCode, created.OTPHash))
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.SendOTP(context.Background(), "12345", models.PurposeLogin)

	assert.ErrorIs(t, err, auth.ErrInvalidPhone)
}

func TestSendOTP_InvalidPurpose(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.SendOTP(context.Background(), "9876543210", models.OTPPurpose("password_reset"))

	assert.ErrorIs(t, err, auth.ErrInvalidPurpose)
}

func TestSendOTP_RateLimitBoundary(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	// Two prior requests in the window: the third still goes through
	mockRepo.EXPECT().
		CountRecentOTPRequests(gomock.Any(), "9876543210", models.PurposeLogin, time.Hour).
		Return(2, nil)
	mockRepo.EXPECT().CreateOTPRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SendOTP(context.Background(), "9876543210", models.PurposeLogin)
	require.NoError(t, err)
}

func TestSendOTP_RateLimited(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CountRecentOTPRequests(gomock.Any(), "9876543210", models.PurposeLogin, time.Hour).
		Return(3, nil)

	_, err := uc.SendOTP(context.Background(), "9876543210", models.PurposeLogin)

	assert.ErrorIs(t, err, auth.ErrRateLimited)
}

func TestSendOTP_CountErrorFailsClosed(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().
		CountRecentOTPRequests(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errors.New("connection refused"))

	// The request is denied, not allowed through, when the count is
	// unavailable
	_, err := uc.SendOTP(context.Background(), "9876543210", models.PurposeLogin)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrRateLimited)
}

func TestSendOTP_SMSDispatchFailureStillSucceeds(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().
		CountRecentOTPRequests(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil)
	mockRepo.EXPECT().CreateOTPRequest(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		PublishOTPSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	resp, err := uc.SendOTP(context.Background(), "9876543210", models.PurposeLogin)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.OTPID)
}

func TestVerifyOTP_SuccessExistingUser(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	userID := uuid.New()

	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), "9876543210").
		Return(&models.User{ID: userID, Phone: "9876543210", Status: models.UserStatusActive}, nil)
	mockRepo.EXPECT().RecordLogin(gomock.Any(), userID, false).Return(nil)

	var stored *models.RefreshToken
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token *models.RefreshToken) error {
			stored = token
			return nil
		})
	mockGW.EXPECT().PublishUserLogin(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "10.1.2.3")

	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, userID, resp.User.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.NotEqual(t, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)

	// The stored record holds the hash of the issued refresh token, never
	// the raw value
	require.NotNil(t, stored)
	assert.Equal(t, security.HashToken(resp.Tokens.RefreshToken), stored.TokenHash)
	assert.Equal(t, userID, stored.UserID)
	require.NotNil(t, stored.IPAddress)
	assert.Equal(t, "10.1.2.3", *stored.IPAddress)
}

func TestVerifyOTP_SuccessNewUser(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))

	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), "9876543210").Return(nil, auth.ErrUserNotFound)

	var created *models.User
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		})
	mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	var event *models.UserLoginEvent
	mockGW.EXPECT().
		PublishUserLogin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *models.UserLoginEvent) error {
			event = e
			return nil
		})

	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	require.NotNil(t, created)
	assert.True(t, created.PhoneVerified)
	assert.False(t, created.IsSuperadmin)
	require.NotNil(t, event)
	assert.True(t, event.IsNewUser)
}

func TestVerifyOTP_SessionUpsertWithDeviceInfo(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	userID := uuid.New()
	deviceInfo := &models.DeviceInfo{
		DeviceID:   "device-42",
		DeviceName: "Pixel 9",
		DeviceOS:   "android-15",
	}

	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), req.ID).Return(nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), "9876543210").
		Return(&models.User{ID: userID, Phone: "9876543210"}, nil)
	mockRepo.EXPECT().RecordLogin(gomock.Any(), userID, false).Return(nil)
	mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		FindOrCreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, session *models.UserSession) (*models.UserSession, error) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "device-42", session.DeviceID)
			assert.Equal(t, "10.1.2.3", session.IPAddress)
			return session, nil
		})
	mockGW.EXPECT().PublishUserLogin(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone:      "9876543210",
		OTP:        "123456",
		OTPID:      req.ID.String(),
		DeviceInfo: deviceInfo,
	}, "10.1.2.3")

	require.NoError(t, err)
}

func TestVerifyOTP_WrongCodeIncrementsAttempts(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))

	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), req.ID, 5).Return(1, nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "654321",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_Expired(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(-time.Minute))
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)

	// Even the correct code is rejected once the request has expired, and
	// no attempt is consumed
	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrOTPExpired)
}

func TestVerifyOTP_AttemptsExhausted(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	req.Attempts = 5
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrOTPAttemptsExhausted)
}

func TestVerifyOTP_UnknownIDCollapsesToInvalid(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	unknownID := uuid.New()
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), unknownID).Return(nil, auth.ErrOTPRequestNotFound)

	// An unknown id is indistinguishable from a wrong code
	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: unknownID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_PhoneMismatchCollapsesToInvalid(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9123456780",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_AlreadyConsumed(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	verifiedAt := time.Now().Add(-time.Minute)
	req.VerifiedAt = &verifiedAt
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_LostConsumptionRace(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	req := storedOTP(t, "9876543210", "123456", time.Now().Add(5*time.Minute))
	mockRepo.EXPECT().GetOTPRequest(gomock.Any(), req.ID).Return(req, nil)
	// A concurrent verification consumed the request between the read and
	// the conditional update
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), req.ID).Return(auth.ErrOTPRequestNotFound)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: req.ID.String(),
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_MalformedOTPID(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9876543210",
		OTP:   "123456",
		OTPID: "not-a-uuid",
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_BootstrapSuperadmin(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)
	uc.cfg.Bootstrap = models.BootstrapConfig{
		SuperadminPhone:  "9000000001",
		SuperadminSecret: "bootstrap-secret-value",
	}

	mockRepo.EXPECT().SuperadminExists(gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetUserByPhone(gomock.Any(), "9000000001").Return(nil, auth.ErrUserNotFound)

	var created *models.User
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		})
	mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishUserLogin(gomock.Any(), gomock.Any()).Return(nil)

	// No otp_id: the bootstrap credential bypasses the OTP engine entirely
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9000000001",
		OTP:   "bootstrap-secret-value",
	}, "")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsSuperadmin)
	assert.True(t, resp.User.IsSuperadmin)
}

func TestVerifyOTP_BootstrapDisabledAfterFirstUse(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	uc.cfg.Bootstrap = models.BootstrapConfig{
		SuperadminPhone:  "9000000001",
		SuperadminSecret: "bootstrap-secret-value",
	}

	// A superadmin already exists, so the credential falls through to the
	// OTP engine and fails there
	mockRepo.EXPECT().SuperadminExists(gomock.Any()).Return(true, nil)

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9000000001",
		OTP:   "bootstrap-secret-value",
		OTPID: "not-a-uuid",
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestVerifyOTP_BootstrapWrongSecret(t *testing.T) {
	uc, _, _ := newTestUC(t)
	uc.cfg.Bootstrap = models.BootstrapConfig{
		SuperadminPhone:  "9000000001",
		SuperadminSecret: "bootstrap-secret-value",
	}

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: "9000000001",
		OTP:   "wrong-secret",
		OTPID: "not-a-uuid",
	}, "")

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}
