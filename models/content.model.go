package models

import (
	"gorm.io/gorm"
)

type ServiceContent struct {
	gorm.Model
	ServiceType string `gorm:"size:50;uniqueIndex:idx_service_lang" json:"service_type"`
	Language    string `gorm:"size:10;uniqueIndex:idx_service_lang" json:"language"` // e.g. 'en', 'hi'
	Title       string `gorm:"size:200" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

type FAQContent struct {
	gorm.Model
	Category string `gorm:"size:50;index" json:"category"`
	Language string `gorm:"size:10;index" json:"language"`
	Question string `gorm:"size:1000" json:"question"`
	Answer   string `gorm:"size:2000" json:"answer"`
}
