package repository

import (
	"learnhub_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// 建课：占位视频行和课程行在同一事务内写入，课程行引用视频ID
func (r *CourseRepository) CreateWithVideo(course *model.Course) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		video := &model.Video{UploadDate: time.Now()}
		if err := tx.Create(video).Error; err != nil {
			return err
		}

		course.VideoID = video.ID
		return tx.Create(course).Error
	})
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByOwner(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("user_id = ?", userID).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// 大小写不敏感的名称子串检索
func (r *CourseRepository) SearchByName(name string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&courses).Error
	return courses, err
}

// 更新课程描述字段和主视频URL，返回更新前的图片文件名，
// 调用方负责删除被替换的旧图片文件
func (r *CourseRepository) UpdateWithVideo(id uint, name, description, image, videoURL string) (oldImage string, rowsAffected int64, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, id).Error; err != nil {
			return err
		}
		oldImage = course.Image

		if err := tx.Model(&model.Video{}).Where("id = ?", course.VideoID).Update("url", videoURL).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Course{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"image":       image,
		})
		if res.Error != nil {
			return res.Error
		}
		rowsAffected = res.RowsAffected
		return nil
	})
	return oldImage, rowsAffected, err
}

// 删课级联删除课程评论。场次、报名和占位视频不在级联范围内，
// 与既有行为保持一致。
func (r *CourseRepository) DeleteWithComments(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}
