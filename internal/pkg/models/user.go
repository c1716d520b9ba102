package models

import (
	"time"

	"github.com/google/uuid"
)

// User statuses
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User represents an account in the system. The auth core creates one on
// first successful OTP verification; profile management owns the rest of
// its lifecycle.
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Phone         string     `json:"phone" db:"phone"`
	FullName      string     `json:"full_name" db:"full_name"`
	PhoneVerified bool       `json:"phone_verified" db:"phone_verified"`
	IsSuperadmin  bool       `json:"is_superadmin" db:"is_superadmin"`
	Status        string     `json:"status" db:"status"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
