package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose scopes an OTP request to the flow it was issued for.
// Rate limits and lookups are keyed by phone+purpose.
type OTPPurpose string

const (
	PurposeLogin        OTPPurpose = "login"
	PurposeRegistration OTPPurpose = "registration"
	PurposeVerifyPhone  OTPPurpose = "verify_phone"
	PurposeVerifyEmail  OTPPurpose = "verify_email"
)

// Valid reports whether p is a known purpose
func (p OTPPurpose) Valid() bool {
	switch p {
	case PurposeLogin, PurposeRegistration, PurposeVerifyPhone, PurposeVerifyEmail:
		return true
	}
	return false
}

// OTPRequest represents a one-time-password request. Only the bcrypt hash of
// the code is stored; the raw code leaves the service exactly once, on the
// SMS dispatch path.
type OTPRequest struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Phone      string     `json:"phone" db:"phone"`
	OTPHash    string     `json:"-" db:"otp_hash"`
	Purpose    OTPPurpose `json:"purpose" db:"purpose"`
	Attempts   int        `json:"attempts" db:"attempts"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// OTPVerification is the outcome of a single verification attempt. A zero
// value means "invalid": unknown request ids, wrong codes and already
// consumed requests all collapse into it so callers cannot probe for ids.
type OTPVerification struct {
	Valid               bool `json:"valid"`
	Expired             bool `json:"expired"`
	MaxAttemptsExceeded bool `json:"max_attempts_exceeded"`
}

// SendOTPRequest is the payload for requesting an OTP
type SendOTPRequest struct {
	Phone   string     `json:"phone" validate:"required"`
	Purpose OTPPurpose `json:"purpose" validate:"required"`
}

// SendOTPResponse is returned after an OTP has been issued
type SendOTPResponse struct {
	OTPID     string `json:"otp_id"`
	ExpiresIn int    `json:"expires_in"`
	Message   string `json:"message"`
}

// VerifyOTPRequest is the payload for verifying an OTP
type VerifyOTPRequest struct {
	Phone      string      `json:"phone" validate:"required"`
	OTP        string      `json:"otp" validate:"required"`
	OTPID      string      `json:"otp_id" validate:"required"`
	DeviceInfo *DeviceInfo `json:"device_info,omitempty"`
}

// AuthResponse is returned after a successful OTP verification
type AuthResponse struct {
	User      *User     `json:"user"`
	Tokens    TokenPair `json:"tokens"`
	IsNewUser bool      `json:"is_new_user"`
}
