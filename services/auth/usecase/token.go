package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jwtpkg "github.com/svaraj/bizdesk/internal/pkg/jwt"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/internal/pkg/security"
	"github.com/svaraj/bizdesk/services/auth"
)

// issuePair mints an access/refresh token pair carrying the user's current
// identity and privilege claims. Each type is signed with its own secret.
func (u *AuthUC) issuePair(user *models.User) (*models.TokenPair, error) {
	access, _, err := jwtpkg.Generate(
		user.ID, user.Phone, user.IsSuperadmin,
		jwtpkg.TokenTypeAccess, u.cfg.JWT.AccessSecret, u.cfg.JWT.Issuer,
		u.accessExpiry(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, _, err := jwtpkg.Generate(
		user.ID, user.Phone, user.IsSuperadmin,
		jwtpkg.TokenTypeRefresh, u.cfg.JWT.RefreshSecret, u.cfg.JWT.Issuer,
		u.refreshExpiry(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// persistRefreshToken stores the SHA-256 hash of a freshly issued refresh
// token together with its device metadata. The raw token is never stored.
func (u *AuthUC) persistRefreshToken(ctx context.Context, userID uuid.UUID, rawToken string, deviceInfo *models.DeviceInfo, ipAddress string) (*models.RefreshToken, error) {
	now := u.now()
	record := &models.RefreshToken{
		ID:         uuid.New(),
		UserID:     userID,
		TokenHash:  security.HashToken(rawToken),
		DeviceInfo: deviceInfo,
		ExpiresAt:  now.Add(u.refreshExpiry()),
		CreatedAt:  now,
	}
	if ipAddress != "" {
		record.IPAddress = &ipAddress
	}

	if err := u.authRepo.StoreRefreshToken(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return record, nil
}

// verifyRefresh checks a raw refresh token against both its signature and
// its stored record. A structurally valid signature alone is not enough:
// the record must exist, be unrevoked, and be unexpired by wall clock. All
// negative outcomes collapse into a nil result.
func (u *AuthUC) verifyRefresh(ctx context.Context, rawToken string) (*jwtpkg.Claims, *models.RefreshToken, error) {
	claims, err := jwtpkg.Validate(rawToken, u.cfg.JWT.RefreshSecret)
	if err != nil || claims.TokenType != jwtpkg.TokenTypeRefresh {
		return nil, nil, nil
	}

	record, err := u.authRepo.GetRefreshTokenByHash(ctx, security.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if record.Revoked() || !u.now().Before(record.ExpiresAt) {
		return nil, nil, nil
	}

	return claims, record, nil
}

// RefreshToken rotates a refresh token: the old token is revoked and a new
// pair is issued from the verified claims. Each refresh token is single-use.
func (u *AuthUC) RefreshToken(ctx context.Context, rawToken string) (*models.TokenPair, error) {
	claims, record, err := u.verifyRefresh(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	if claims == nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	pair, err := u.issuePair(&models.User{
		ID:           userID,
		Phone:        claims.Phone,
		IsSuperadmin: claims.IsSuperadmin,
	})
	if err != nil {
		return nil, err
	}

	if err := u.authRepo.RevokeRefreshToken(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	ip := ""
	if record.IPAddress != nil {
		ip = *record.IPAddress
	}
	if _, err := u.persistRefreshToken(ctx, userID, pair.RefreshToken, record.DeviceInfo, ip); err != nil {
		return nil, err
	}

	return pair, nil
}
