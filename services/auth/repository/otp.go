package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/services/auth"
)

// CreateOTPRequest inserts a new OTP challenge row
func (r *AuthRepo) CreateOTPRequest(ctx context.Context, req *models.OTPRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO otp_requests (id, phone, otp_hash, purpose, attempts, expires_at, created_at)
		VALUES (:id, :phone, :otp_hash, :purpose, :attempts, :expires_at, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return fmt.Errorf("failed to insert otp request: %w", err)
	}
	return nil
}

// GetOTPRequest retrieves an OTP challenge by ID
func (r *AuthRepo) GetOTPRequest(ctx context.Context, id uuid.UUID) (*models.OTPRequest, error) {
	query := `
		SELECT id, phone, otp_hash, purpose, attempts, expires_at, verified_at, created_at
		FROM otp_requests
		WHERE id = $1
	`

	var req models.OTPRequest
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrOTPRequestNotFound
		}
		return nil, fmt.Errorf("failed to get otp request: %w", err)
	}
	return &req, nil
}

// CountRecentOTPRequests counts OTP challenges issued for a phone and purpose
// within the trailing rate window
func (r *AuthRepo) CountRecentOTPRequests(ctx context.Context, phone string, purpose models.OTPPurpose, window time.Duration) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM otp_requests
		WHERE phone = $1 AND purpose = $2 AND created_at > $3
	`

	var count int
	since := time.Now().Add(-window)
	err := r.db.GetContext(ctx, &count, query, phone, purpose, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count otp requests: %w", err)
	}
	return count, nil
}

// IncrementOTPAttempts bumps the attempt counter only while it is still below
// maxAttempts, so concurrent verifications cannot push the counter past the
// cap. Returns the counter after the increment, or ErrOTPAttemptsExhausted
// when the cap was already reached.
func (r *AuthRepo) IncrementOTPAttempts(ctx context.Context, id uuid.UUID, maxAttempts int) (int, error) {
	query := `
		UPDATE otp_requests
		SET attempts = attempts + 1
		WHERE id = $1 AND attempts < $2
		RETURNING attempts
	`

	var attempts int
	err := r.db.GetContext(ctx, &attempts, query, id, maxAttempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, auth.ErrOTPAttemptsExhausted
		}
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	return attempts, nil
}

// MarkOTPVerified consumes an OTP challenge. The verified_at guard makes the
// consumption single-winner: a second caller gets ErrOTPRequestNotFound.
func (r *AuthRepo) MarkOTPVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_requests
		SET verified_at = $2
		WHERE id = $1 AND verified_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark otp verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return auth.ErrOTPRequestNotFound
	}
	return nil
}
