package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type SessionService struct {
	UserRepo    *repository.UserRepository
	SessionRepo *repository.SessionRepository
}

func NewSessionService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository) *SessionService {
	return &SessionService{UserRepo: userRepo, SessionRepo: sessionRepo}
}

// CreateSession 新建场次，调用方需要事先确认课程存在
func (s *SessionService) CreateSession(courseID uint, startTime, endTime, ownerUsername string) (uint, error) {
	userID, err := s.UserRepo.ResolveID(ownerUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrUserNotFound
		}
		return 0, fmt.Errorf("resolve user %q: %w", ownerUsername, err)
	}

	session := &model.Session{
		CourseID:  courseID,
		StartTime: startTime,
		EndTime:   endTime,
		UserID:    userID,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return session.ID, nil
}

// UpdateSession 返回受影响行数，0 表示目标场次不存在
func (s *SessionService) UpdateSession(sessionID, courseID uint, startTime, endTime string) (int64, error) {
	return s.SessionRepo.Update(sessionID, courseID, startTime, endTime)
}

func (s *SessionService) DeleteSession(sessionID uint) (int64, error) {
	return s.SessionRepo.DeleteByID(sessionID)
}

func (s *SessionService) GetSessionsByCourse(courseID uint) ([]model.Session, error) {
	return s.SessionRepo.FindByCourse(courseID)
}

func (s *SessionService) SessionExists(sessionID uint) (bool, error) {
	return s.SessionRepo.Exists(sessionID)
}
