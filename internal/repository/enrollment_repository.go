package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) ExistsByUserAndSession(userID, sessionID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Count(&count).Error
	return count > 0, err
}

// 一条 JOIN 查出某课程下该用户报名关联的全部场次ID
func (r *EnrollmentRepository) SessionIDsForUserCourse(userID, courseID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Enrollment{}).
		Joins("JOIN session ON session.id = enrollment.session_id").
		Where("session.course_id = ? AND enrollment.user_id = ? AND session.deleted_at IS NULL", courseID, userID).
		Pluck("enrollment.session_id", &ids).Error
	return ids, err
}

// 报名 → 场次 → 课程 一次 JOIN 取回用户已报课程。
// 同一课程下有几个场次就出现几行，调用方按此语义消费。
func (r *EnrollmentRepository) FindCoursesByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Model(&model.Course{}).
		Joins("JOIN session ON session.course_id = course.id").
		Joins("JOIN enrollment ON enrollment.session_id = session.id").
		Where("enrollment.user_id = ? AND session.deleted_at IS NULL AND enrollment.deleted_at IS NULL", userID).
		Find(&courses).Error
	return courses, err
}
