package model

// Hobby is a named hobby attached to a profile.
type Hobby struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProfileID uint   `json:"profile_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"size:255;not null"`
}
