package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BillPending = "PENDING"
	BillPaid    = "PAID"
	BillOverdue = "OVERDUE"
)

type Bill struct {
	gorm.Model
	BillNumber     string         `gorm:"size:50;uniqueIndex;not null" json:"bill_number"`
	AccountType    string         `gorm:"size:20;not null" json:"account_type"`
	ConsumerNumber string         `gorm:"size:50;index;not null" json:"consumer_number"`
	BillDate       time.Time      `json:"bill_date"`
	DueDate        time.Time      `json:"due_date"`
	Amount         float64        `gorm:"type:decimal(12,2)" json:"amount"`
	Arrears        float64        `gorm:"type:decimal(12,2);default:0" json:"arrears"`
	Status         string         `gorm:"size:20;default:'PENDING'" json:"status"`
	LineItems      []BillLineItem `gorm:"foreignKey:BillID" json:"line_items,omitempty"`
}

type BillLineItem struct {
	gorm.Model
	BillID      uint    `gorm:"not null;index" json:"bill_id"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `gorm:"type:decimal(10,2)" json:"amount"`
	Quantity    float64 `gorm:"type:decimal(6,2);default:1" json:"quantity"`
}
