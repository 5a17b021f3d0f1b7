package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RequestSubmitted  = "SUBMITTED"
	RequestProcessing = "PROCESSING"
	RequestApproved   = "APPROVED"
	RequestRejected   = "REJECTED"
)

type ServiceRequest struct {
	gorm.Model
	RequestID   string         `gorm:"size:50;uniqueIndex;not null" json:"request_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	ServiceType string         `gorm:"size:50" json:"service_type"` // e.g. New Connection, Load Change
	RequestType string         `gorm:"size:50" json:"request_type"`
	Details     datatypes.JSON `json:"details"`
	Status      string         `gorm:"size:20;default:'SUBMITTED'" json:"status"`
}
