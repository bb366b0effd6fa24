package model

import "time"

// FreelancerProfile is the marketplace profile of a freelancer account.
type FreelancerProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"index;not null"`
	Headline  string    `json:"headline" gorm:"size:255;not null"`
	Skills    string    `json:"skills" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Services []Service `json:"services,omitempty" gorm:"foreignKey:FreelancerID"`
}
