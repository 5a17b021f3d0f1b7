package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCitizen    = "CITIZEN"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

type User struct {
	gorm.Model
	Username           string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Phone              *string    `gorm:"size:15;uniqueIndex" json:"phone,omitempty"` // Registered mobile number
	ConsumerNumber     *string    `gorm:"size:50;uniqueIndex" json:"consumer_number,omitempty"`
	Email              string     `gorm:"size:100;default:''" json:"email,omitempty"`
	Role               string     `gorm:"size:20;default:'CITIZEN'" json:"role"`
	LanguagePreference string     `gorm:"size:10;default:'en'" json:"language_preference"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	IsDeleted          bool       `gorm:"default:false" json:"-"`
}
