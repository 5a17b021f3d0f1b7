package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSession tracks one kiosk login, keyed by the access token's JTI.
type UserSession struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	TokenID    string `gorm:"size:64;index" json:"token_id"`
	IPAddress  string `gorm:"size:45" json:"ip_address,omitempty"`
	DeviceInfo string `gorm:"size:512" json:"device_info,omitempty"`
	LogoutTime *time.Time `json:"logout_time,omitempty"`
}
