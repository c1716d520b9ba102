package models

import "time"

// SMSMessage is published to the SMS dispatcher. Delivery is best-effort;
// a failed publish never rolls back the OTP request it belongs to.
type SMSMessage struct {
	Phone     string    `json:"phone"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLoginEvent is published after a successful OTP verification
type UserLoginEvent struct {
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone"`
	IsNewUser bool      `json:"is_new_user"`
	DeviceID  string    `json:"device_id,omitempty"`
	LoginAt   time.Time `json:"login_at"`
}
