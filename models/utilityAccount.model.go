package models

import (
	"gorm.io/gorm"
)

const (
	AccountElectricity = "ELECTRICITY"
	AccountGas         = "GAS"
	AccountWater       = "WATER"
)

type UtilityAccount struct {
	gorm.Model
	ConsumerNumber string `gorm:"size:50;uniqueIndex;not null" json:"consumer_number"`
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	AccountHolder  string `gorm:"size:100" json:"account_holder"`
	Address        string `gorm:"size:512" json:"address"`
	AccountType    string `gorm:"size:20;not null" json:"account_type"`                   // ELECTRICITY, GAS, WATER
	ConnectionType string `gorm:"size:20;default:'RESIDENTIAL'" json:"connection_type"`   // RESIDENTIAL, COMMERCIAL, INDUSTRIAL
	MeterNumber    string `gorm:"size:50" json:"meter_number,omitempty"`                  // electricity connections only
	IsDeleted      bool   `gorm:"default:false" json:"-"`
}
