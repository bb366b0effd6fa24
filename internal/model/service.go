package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an offering listed by a freelancer with an hourly rate.
type Service struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	FreelancerID uint            `json:"freelancer_id" gorm:"index;not null"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"size:1024"`
	HourlyRate   decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time       `json:"created_at"`
}
