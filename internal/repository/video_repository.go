package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(video *model.Video) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.First(&video, id).Error
	return &video, err
}

func (r *VideoRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Video{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *VideoRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&model.Video{}, id)
	return res.RowsAffected, res.Error
}

func (r *VideoRepository) UpdateURL(id uint, url string) error {
	return r.DB.Model(&model.Video{}).Where("id = ?", id).Update("url", url).Error
}

// 课程主视频URL：course.video_id 指向的占位行
func (r *VideoRepository) FindURLByCourse(courseID uint) (string, error) {
	var course model.Course
	if err := r.DB.Select("video_id").First(&course, courseID).Error; err != nil {
		return "", err
	}

	var video model.Video
	if err := r.DB.Select("url").First(&video, course.VideoID).Error; err != nil {
		return "", err
	}
	return video.URL, nil
}
