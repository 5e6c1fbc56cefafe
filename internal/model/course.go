package model

// swagger:model Course
type Course struct {
	BaseModel
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Instructor  string `gorm:"size:100" json:"instructor"` // 冗余保存创建者用户名，列表页直接展示
	Image       string `gorm:"size:255" json:"image"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	VideoID     uint   `gorm:"not null" json:"video_id"` // 课程主视频占位行，建课时创建
}

func (Course) TableName() string {
	return "course"
}
