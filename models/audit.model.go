package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AuditCreate  = "CREATE"
	AuditUpdate  = "UPDATE"
	AuditDelete  = "DELETE"
	AuditLogin   = "LOGIN"
	AuditLogout  = "LOGOUT"
	AuditView    = "VIEW"
	AuditPayment = "PAYMENT"
)

type AuditLog struct {
	gorm.Model
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"`
	ActionType string         `gorm:"size:20;not null" json:"action_type"`
	EntityType string         `gorm:"size:50" json:"entity_type"` // e.g. 'Bill', 'Payment'
	EntityID   string         `gorm:"size:50" json:"entity_id,omitempty"`
	IPAddress  string         `gorm:"size:45" json:"ip_address,omitempty"`
	Details    datatypes.JSON `json:"details,omitempty"`
}

type APIAccessLog struct {
	gorm.Model
	Endpoint       string `gorm:"size:200" json:"endpoint"`
	Method         string `gorm:"size:10" json:"method"`
	UserID         *uint  `gorm:"index" json:"user_id,omitempty"`
	IPAddress      string `gorm:"size:45" json:"ip_address,omitempty"`
	ResponseStatus int    `json:"response_status"`
}
