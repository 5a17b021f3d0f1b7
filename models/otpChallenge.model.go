package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPChallenge is one issued one-time code. Identifier is a phone number or
// consumer number, opaque here beyond exact match. Superseded challenges are
// soft-deleted so issuance history stays available for rate limiting.
type OTPChallenge struct {
	gorm.Model
	Identifier string    `gorm:"size:50;not null;index" json:"identifier"`
	Code       string    `gorm:"size:10;not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	IsUsed     bool      `gorm:"default:false" json:"is_used"`
}
