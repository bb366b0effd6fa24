package model

// StudyGroup links a profile to a named study group.
type StudyGroup struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProfileID uint   `json:"profile_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"size:255;not null"`
}
