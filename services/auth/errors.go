package auth

import "errors"

// Typed errors surfaced at the orchestrator boundary. The handler layer
// maps each of these to a stable HTTP status; store-layer failures are
// wrapped and propagate as system errors instead.
var (
	// ErrInvalidPhone means the phone number failed normalization
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidPurpose means the OTP purpose is not one of the known values
	ErrInvalidPurpose = errors.New("invalid OTP purpose")

	// ErrRateLimited means too many OTP requests in the trailing window.
	// Retryable once the window rolls past the oldest request.
	ErrRateLimited = errors.New("too many OTP requests, try again later")

	// ErrInvalidOTP means the code was wrong but attempts remain. The same
	// error covers unknown otp_ids so callers cannot probe for valid ids.
	ErrInvalidOTP = errors.New("invalid OTP code")

	// ErrOTPExpired is terminal for the request; a new OTP must be issued
	ErrOTPExpired = errors.New("OTP has expired")

	// ErrOTPAttemptsExhausted is terminal for the request
	ErrOTPAttemptsExhausted = errors.New("maximum OTP attempts exceeded")

	// ErrInvalidRefreshToken covers bad signature, expiry, revocation and
	// unknown tokens alike; the caller must authenticate from scratch.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrSessionNotFound means the session does not exist or is not owned
	// by the caller
	ErrSessionNotFound = errors.New("session not found")

	// ErrUserNotFound means no account exists for the given identifier
	ErrUserNotFound = errors.New("user not found")

	// ErrOTPRequestNotFound is returned by the repository for unknown OTP
	// request ids. The usecase collapses it into ErrInvalidOTP before it
	// reaches any caller.
	ErrOTPRequestNotFound = errors.New("OTP request not found")

	// ErrRefreshTokenNotFound is the repository-level miss for token
	// hashes; collapsed into ErrInvalidRefreshToken by the usecase.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
