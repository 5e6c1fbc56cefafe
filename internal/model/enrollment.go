package model

import "time"

const EnrollmentStatusEnrolled = "enrolled"

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	SessionID uint      `gorm:"index;not null" json:"session_id"`
	Date      time.Time `json:"date"`
	Status    string    `gorm:"size:20;default:'enrolled'" json:"status"`
}

func (Enrollment) TableName() string {
	return "enrollment"
}
