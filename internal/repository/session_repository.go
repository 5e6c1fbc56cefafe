package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.DB.Create(session).Error
}

// 返回受影响行数，0 表示场次不存在，由调用方决定如何处理
func (r *SessionRepository) Update(id, courseID uint, startTime, endTime string) (int64, error) {
	res := r.DB.Model(&model.Session{}).Where("id = ?", id).Updates(map[string]interface{}{
		"course_id":  courseID,
		"start_time": startTime,
		"end_time":   endTime,
	})
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&model.Session{}, id)
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) FindByCourse(courseID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Where("course_id = ?", courseID).Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Session{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// 场次在此 schema 中兼作用户的报名占位，(用户, 课程) 查场次即查报名
func (r *SessionRepository) FirstByUserAndCourse(userID, courseID uint) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&session).Error
	return &session, err
}

func (r *SessionRepository) FirstByUser(userID uint) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("user_id = ?", userID).First(&session).Error
	return &session, err
}
