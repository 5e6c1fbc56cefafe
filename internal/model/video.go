package model

import "time"

// 视频行有两种用法：course.video_id 指向的课程主视频占位行（SessionID 为空），
// 以及挂在某个场次下的上传视频。
// swagger:model Video
type Video struct {
	BaseModel
	SessionID   *uint     `gorm:"index" json:"session_id,omitempty"`
	Title       string    `gorm:"size:200" json:"title"`
	URL         string    `gorm:"size:500" json:"url"`
	Duration    string    `gorm:"size:8" json:"duration"` // HH:MM:SS
	Description string    `gorm:"type:text" json:"description"`
	UploadDate  time.Time `json:"upload_date"`
}

func (Video) TableName() string {
	return "video"
}
