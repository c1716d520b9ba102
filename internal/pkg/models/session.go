package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeviceInfo describes the client device supplied on login or refresh.
// It is stored as JSONB alongside refresh tokens.
type DeviceInfo struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name,omitempty"`
	DeviceOS   string `json:"device_os,omitempty"`
	AppVersion string `json:"app_version,omitempty"`
}

// Value implements driver.Valuer so DeviceInfo can be written as JSONB
func (d DeviceInfo) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading JSONB columns
func (d *DeviceInfo) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type %T for DeviceInfo", src)
	}
}

// UserSession tracks one authenticated device/app install for a user.
// At most one active row per (user_id, device_id) is treated as canonical.
type UserSession struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	DeviceID     string    `json:"device_id" db:"device_id"`
	DeviceName   string    `json:"device_name" db:"device_name"`
	DeviceOS     string    `json:"device_os" db:"device_os"`
	AppVersion   string    `json:"app_version" db:"app_version"`
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	LastActiveAt time.Time `json:"last_active_at" db:"last_active_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
