package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type CommentService struct {
	UserRepo    *repository.UserRepository
	CommentRepo *repository.CommentRepository
}

func NewCommentService(userRepo *repository.UserRepository, commentRepo *repository.CommentRepository) *CommentService {
	return &CommentService{UserRepo: userRepo, CommentRepo: commentRepo}
}

func (s *CommentService) AddComment(username string, courseID uint, text string) error {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return fmt.Errorf("resolve user %q: %w", username, err)
	}

	comment := &model.Comment{
		UserID:   userID,
		CourseID: courseID,
		Comment:  text,
	}
	return s.CommentRepo.Create(comment)
}

func (s *CommentService) GetComments(courseID uint) ([]model.Comment, error) {
	return s.CommentRepo.FindByCourse(courseID)
}

func (s *CommentService) DeleteComment(commentID uint, username string, courseID uint) error {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return fmt.Errorf("resolve user %q: %w", username, err)
	}

	exists, err := s.CommentRepo.ExistsByUserAndCourse(userID, courseID)
	if err != nil {
		return fmt.Errorf("check comment: %w", err)
	}
	if !exists {
		return util.ErrCommentNotFound
	}

	rows, err := s.CommentRepo.DeleteByID(commentID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	if rows == 0 {
		return util.ErrCommentNotFound
	}
	return nil
}
