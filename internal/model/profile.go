package model

import "time"

// Profile is a public bio page shown on the community site.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Bio       string    `json:"bio" gorm:"size:1024"`
	Quote     string    `json:"quote" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	StudyGroups []StudyGroup `json:"study_groups,omitempty" gorm:"foreignKey:ProfileID"`
	Hobbies     []Hobby      `json:"hobbies,omitempty" gorm:"foreignKey:ProfileID"`
}
