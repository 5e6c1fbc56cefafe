package model

// 课程场次。既表示教师排课的时间段，也承担"用户报名占位"的角色：
// 报名流程会为 (课程, 用户) 额外生成一条默认场次，退课时整条删除。
// swagger:model Session
type Session struct {
	BaseModel
	CourseID  uint   `gorm:"index;not null" json:"course_id"`
	StartTime string `gorm:"size:8;not null" json:"start_time"` // HH:MM:SS
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
}

func (Session) TableName() string {
	return "session"
}
