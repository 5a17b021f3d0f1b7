package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID           uint   `gorm:"not null;index" json:"user_id"`
	Title            string `gorm:"size:200" json:"title"`
	Message          string `gorm:"size:2000" json:"message"`
	NotificationType string `gorm:"size:50" json:"notification_type"` // ALERT, INFO, BILL
	IsRead           bool   `gorm:"default:false" json:"is_read"`
}

type SystemAlert struct {
	gorm.Model
	AlertType string    `gorm:"size:50" json:"alert_type"`
	Title     string    `gorm:"size:200" json:"title"`
	Message   string    `gorm:"size:2000" json:"message"`
	Severity  string    `gorm:"size:20" json:"severity"` // LOW, HIGH, CRITICAL
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
