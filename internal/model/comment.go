package model

// swagger:model Comment
type Comment struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	CourseID uint   `gorm:"index;not null" json:"course_id"`
	Comment  string `gorm:"type:text;not null" json:"comment"`
}

func (Comment) TableName() string {
	return "comment"
}
