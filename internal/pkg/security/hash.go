// Package security provides the hashing and random-generation primitives of
// the auth core. OTP codes get a deliberately slow bcrypt hash: a 6-digit
// space combined with the attempt cap leaves offline brute force as the only
// angle worth defending against. Refresh tokens are high-entropy, so a fast
// SHA-256 is enough for storage lookups.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// OTPCodeLength is the number of digits in a generated OTP code
const OTPCodeLength = 6

// GenerateOTPCode returns a uniformly random 6-digit decimal code in
// [100000, 999999]; no leading zeros.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// HashOTP hashes an OTP code with bcrypt at the given cost
func HashOTP(code string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP code: %w", err)
	}
	return string(hash), nil
}

// VerifyOTPHash reports whether code matches the stored bcrypt hash
func VerifyOTPHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

// HashToken calculates the SHA-256 hash of a token value for storage.
// Tokens carry enough entropy that a fast hash is sufficient here.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// ConstantTimeEquals compares two strings without leaking timing information
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
