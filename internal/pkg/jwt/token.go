package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim. Access and refresh tokens are
// signed with separate secrets, so a token of one type never validates
// against the other's key.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the registered JWT claims plus our custom fields
type Claims struct {
	Phone        string `json:"phone"`
	TokenType    string `json:"type"`
	IsSuperadmin bool   `json:"is_superadmin"`
	jwt.RegisteredClaims
}

// Generate signs a token of the given type for the user. It returns the
// signed token and its unix expiry.
func Generate(userID uuid.UUID, phone string, isSuperadmin bool, tokenType, secret, issuer string, expiry time.Duration) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := Claims{
		Phone:        phone,
		TokenType:    tokenType,
		IsSuperadmin: isSuperadmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt.Unix(), nil
}

// Validate parses a token with the given secret and returns its claims.
// Signature, expiry and signing-method checks all fail the parse.
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
