package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentInitiated = "INITIATED"
	PaymentSuccess   = "SUCCESS"
	PaymentFailure   = "FAILURE"
	PaymentRefunded  = "REFUNDED"
)

type Payment struct {
	gorm.Model
	PaymentID        string  `gorm:"size:50;uniqueIndex;not null" json:"payment_id"`
	BillID           uint    `gorm:"not null;index" json:"bill_id"`
	UserID           uint    `gorm:"not null;index" json:"user_id"`
	Amount           float64 `gorm:"type:decimal(12,2)" json:"amount"`
	PaymentMethod    string  `gorm:"size:50" json:"payment_method"` // DEBIT_CARD, UPI, NET_BANKING
	TransactionID    string  `gorm:"size:100" json:"transaction_id,omitempty"` // Gateway transaction ID
	GatewayReference string  `gorm:"size:100" json:"gateway_reference,omitempty"`
	Status           string  `gorm:"size:20;default:'INITIATED'" json:"status"`
}

type PaymentReceipt struct {
	gorm.Model
	PaymentID     uint           `gorm:"uniqueIndex;not null" json:"payment_id"`
	ReceiptNumber string         `gorm:"size:50;uniqueIndex;not null" json:"receipt_number"`
	ReceiptData   datatypes.JSON `json:"receipt_data"` // full receipt details for printing
}
