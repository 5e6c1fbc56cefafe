package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByCourse(courseID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("course_id = ?", courseID).Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) ExistsByUserAndCourse(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *CommentRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&model.Comment{}, id)
	return res.RowsAffected, res.Error
}
