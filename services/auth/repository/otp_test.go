package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/services/auth"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &AuthRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}
	return repo, mock
}

func TestCreateOTPRequest(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	mock.ExpectExec("^INSERT INTO otp_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := &models.OTPRequest{
		Phone:     "9876543210",
		OTPHash:   "$2a$10$abcdefghijklmnopqrstuv",
		Purpose:   models.PurposeLogin,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	err := repo.CreateOTPRequest(context.Background(), req)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOTPRequest(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "phone", "otp_hash", "purpose", "attempts", "expires_at", "verified_at", "created_at"}).
		AddRow(id, "9876543210", "$2a$10$hash", "login", 2, time.Now().Add(5*time.Minute), nil, time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM otp_requests WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	req, err := repo.GetOTPRequest(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, req.ID)
	assert.Equal(t, "9876543210", req.Phone)
	assert.Equal(t, 2, req.Attempts)
	assert.Nil(t, req.VerifiedAt)
}

func TestGetOTPRequest_NotFound(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM otp_requests WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOTPRequest(context.Background(), id)

	assert.ErrorIs(t, err, auth.ErrOTPRequestNotFound)
}

func TestCountRecentOTPRequests(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM otp_requests").
		WithArgs("9876543210", models.PurposeLogin, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountRecentOTPRequests(context.Background(), "9876543210", models.PurposeLogin, time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIncrementOTPAttempts(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("^UPDATE otp_requests SET attempts").
		WithArgs(id, 5).
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(3))

	attempts, err := repo.IncrementOTPAttempts(context.Background(), id, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestIncrementOTPAttempts_CapReached(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	// The guarded UPDATE matches no rows once attempts hit the cap
	id := uuid.New()
	mock.ExpectQuery("^UPDATE otp_requests SET attempts").
		WithArgs(id, 5).
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}))

	_, err := repo.IncrementOTPAttempts(context.Background(), id, 5)

	assert.ErrorIs(t, err, auth.ErrOTPAttemptsExhausted)
}

func TestMarkOTPVerified(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("^UPDATE otp_requests SET verified_at").
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkOTPVerified(context.Background(), id)
	assert.NoError(t, err)
}

func TestMarkOTPVerified_AlreadyConsumed(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("^UPDATE otp_requests SET verified_at").
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkOTPVerified(context.Background(), id)
	assert.ErrorIs(t, err, auth.ErrOTPRequestNotFound)
}
