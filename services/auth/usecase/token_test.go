package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/svaraj/bizdesk/internal/pkg/jwt"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/internal/pkg/security"
	"github.com/svaraj/bizdesk/services/auth"
)

// issueRefresh mints a refresh token the way the login flow would, returning
// the raw token and its stored record
func issueRefresh(t *testing.T, uc *AuthUC, userID uuid.UUID) (string, *models.RefreshToken) {
	raw, _, err := jwtpkg.Generate(
		userID, "9876543210", false,
		jwtpkg.TokenTypeRefresh, uc.cfg.JWT.RefreshSecret, uc.cfg.JWT.Issuer,
		uc.refreshExpiry(),
	)
	require.NoError(t, err)

	record := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: security.HashToken(raw),
		ExpiresAt: time.Now().Add(uc.refreshExpiry()),
		CreatedAt: time.Now(),
	}
	return raw, record
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	userID := uuid.New()
	raw, record := issueRefresh(t, uc, userID)

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), security.HashToken(raw)).
		Return(record, nil)
	mockRepo.EXPECT().RevokeRefreshToken(gomock.Any(), record.ID).Return(nil)

	var stored *models.RefreshToken
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token *models.RefreshToken) error {
			stored = token
			return nil
		})

	pair, err := uc.RefreshToken(context.Background(), raw)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, raw, pair.RefreshToken)

	// The new record hashes the new token and belongs to the same user
	require.NotNil(t, stored)
	assert.Equal(t, security.HashToken(pair.RefreshToken), stored.TokenHash)
	assert.Equal(t, userID, stored.UserID)

	// The new access token carries the original identity
	claims, err := jwtpkg.Validate(pair.AccessToken, uc.cfg.JWT.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, jwtpkg.TokenTypeAccess, claims.TokenType)
}

func TestRefreshToken_CarriesDeviceMetadata(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	userID := uuid.New()
	raw, record := issueRefresh(t, uc, userID)

	ip := "10.1.2.3"
	record.IPAddress = &ip
	record.DeviceInfo = &models.DeviceInfo{DeviceID: "device-42"}

	mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(record, nil)
	mockRepo.EXPECT().RevokeRefreshToken(gomock.Any(), record.ID).Return(nil)

	var stored *models.RefreshToken
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token *models.RefreshToken) error {
			stored = token
			return nil
		})

	_, err := uc.RefreshToken(context.Background(), raw)

	require.NoError(t, err)
	require.NotNil(t, stored.DeviceInfo)
	assert.Equal(t, "device-42", stored.DeviceInfo.DeviceID)
	require.NotNil(t, stored.IPAddress)
	assert.Equal(t, "10.1.2.3", *stored.IPAddress)
}

func TestRefreshToken_UnknownToken(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	raw, _ := issueRefresh(t, uc, uuid.New())

	// Structurally valid signature, but no stored record
	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrRefreshTokenNotFound)

	_, err := uc.RefreshToken(context.Background(), raw)

	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshToken_RevokedToken(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	raw, record := issueRefresh(t, uc, uuid.New())

	revokedAt := time.Now().Add(-time.Minute)
	record.RevokedAt = &revokedAt
	mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(record, nil)

	_, err := uc.RefreshToken(context.Background(), raw)

	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshToken_ExpiredRecord(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	raw, record := issueRefresh(t, uc, uuid.New())

	record.ExpiresAt = time.Now().Add(-time.Minute)
	mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(record, nil)

	_, err := uc.RefreshToken(context.Background(), raw)

	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	uc, _, _ := newTestUC(t)

	// An access token, even freshly issued by this service, is not a
	// refresh credential
	raw, _, err := jwtpkg.Generate(
		uuid.New(), "9876543210", false,
		jwtpkg.TokenTypeAccess, uc.cfg.JWT.AccessSecret, uc.cfg.JWT.Issuer,
		uc.accessExpiry(),
	)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), raw)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshToken_GarbageToken(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.RefreshToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshToken_SingleUseChain(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	userID := uuid.New()
	raw, record := issueRefresh(t, uc, userID)

	// First rotation succeeds and revokes the original
	mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), security.HashToken(raw)).Return(record, nil)
	mockRepo.EXPECT().RevokeRefreshToken(gomock.Any(), record.ID).Return(nil)
	mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.RefreshToken(context.Background(), raw)
	require.NoError(t, err)

	// Replaying the original token now finds a revoked record
	revokedAt := time.Now()
	record.RevokedAt = &revokedAt
	mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), security.HashToken(raw)).Return(record, nil)

	_, err = uc.RefreshToken(context.Background(), raw)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}
