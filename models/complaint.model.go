package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
	ComplaintClosed     = "CLOSED"
)

type Complaint struct {
	gorm.Model
	ComplaintID string     `gorm:"size:50;uniqueIndex;not null" json:"complaint_id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	ServiceType string     `gorm:"size:50" json:"service_type"` // e.g. Billing, Connectivity
	Category    string     `gorm:"size:50" json:"category"`
	Description string     `gorm:"size:2000" json:"description"`
	Priority    string     `gorm:"size:10;default:'MEDIUM'" json:"priority"` // LOW, MEDIUM, HIGH
	Status      string     `gorm:"size:20;default:'OPEN'" json:"status"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Updates     []ComplaintUpdate `gorm:"foreignKey:ComplaintRef" json:"updates,omitempty"`
}

type ComplaintUpdate struct {
	gorm.Model
	ComplaintRef uint   `gorm:"not null;index" json:"complaint_ref"`
	Status       string `gorm:"size:20" json:"status"`
	Remarks      string `gorm:"size:1000" json:"remarks"`
	UpdatedBy    uint   `json:"updated_by"`
}
