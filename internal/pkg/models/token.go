package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the stored record of an issued refresh token. The raw
// token is never persisted, only its SHA-256 hash. A token is usable iff
// revoked_at is null and the wall clock is before expires_at.
type RefreshToken struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     uuid.UUID   `json:"user_id" db:"user_id"`
	TokenHash  string      `json:"-" db:"token_hash"`
	DeviceInfo *DeviceInfo `json:"device_info,omitempty" db:"device_info"`
	IPAddress  *string     `json:"ip_address,omitempty" db:"ip_address"`
	ExpiresAt  time.Time   `json:"expires_at" db:"expires_at"`
	RevokedAt  *time.Time  `json:"revoked_at,omitempty" db:"revoked_at"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// Revoked reports whether the token has been revoked
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}

// TokenPair carries a freshly minted access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest is the payload for rotating a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
