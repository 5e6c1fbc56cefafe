package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
}

func NewUserService(userRepo *repository.UserRepository, courseRepo *repository.CourseRepository) *UserService {
	return &UserService{UserRepo: userRepo, CourseRepo: courseRepo}
}

func (s *UserService) GetProfile(username string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) updateColumn(username, column string, value interface{}) error {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return fmt.Errorf("resolve user %q: %w", username, err)
	}

	rows, err := s.UserRepo.UpdateColumn(userID, column, value)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	if rows == 0 {
		return util.ErrUserNotFound
	}
	return nil
}

func (s *UserService) UpdateUsername(newUsername, username string) error {
	taken, err := s.UserRepo.ExistsByUsername(newUsername)
	if err != nil {
		return err
	}
	if taken {
		return util.ErrUsernameTaken
	}
	return s.updateColumn(username, "username", newUsername)
}

func (s *UserService) UpdateEmail(newEmail, username string) error {
	return s.updateColumn(username, "email", newEmail)
}

func (s *UserService) UpdatePassword(username, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.updateColumn(username, "password", string(hashed))
}

func (s *UserService) UpdateProfilePic(newProfilePic, username string) error {
	return s.updateColumn(username, "profile_pic", newProfilePic)
}

func (s *UserService) GetUserImage(username string) (string, error) {
	user, err := s.GetProfile(username)
	if err != nil {
		return "", err
	}
	return user.ProfilePic, nil
}

// DeleteUser 删除用户。级联不是自动的：名下还有课程时拒绝删除，
// 避免留下没有属主的课程。
func (s *UserService) DeleteUser(id uint) error {
	exists, err := s.UserRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrUserNotFound
	}

	courses, err := s.CourseRepo.FindByOwner(id)
	if err != nil {
		return fmt.Errorf("check owned courses: %w", err)
	}
	if len(courses) > 0 {
		return util.ErrUserHasCourses
	}

	return s.UserRepo.Delete(id)
}
