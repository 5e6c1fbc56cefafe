package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"
	"time"

	"gorm.io/gorm"
)

// EnrollmentService 负责报名/退课的多表写入序列。
// 场次在这里承担双重角色：报名会为 (课程, 用户) 生成一条默认场次
// 作为个人报名占位，退课则把占位连同报名记录一并删除。
type EnrollmentService struct {
	UserRepo       *repository.UserRepository
	SessionRepo    *repository.SessionRepository
	EnrollmentRepo *repository.EnrollmentRepository
	DB             *gorm.DB
}

func NewEnrollmentService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	db *gorm.DB,
) *EnrollmentService {
	return &EnrollmentService{
		UserRepo:       userRepo,
		SessionRepo:    sessionRepo,
		EnrollmentRepo: enrollmentRepo,
		DB:             db,
	}
}

func (s *EnrollmentService) resolveUser(username string) (uint, error) {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrUserNotFound
		}
		return 0, fmt.Errorf("resolve user %q: %w", username, err)
	}
	return userID, nil
}

// CheckEnrolled 判断用户是否已报名某课程。
// 没有占位场次时返回 false 而不是错误；查询失败原样上抛。
func (s *EnrollmentService) CheckEnrolled(username string, courseID uint) (bool, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		return false, err
	}

	session, err := s.SessionRepo.FirstByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find session: %w", err)
	}

	return s.EnrollmentRepo.ExistsByUserAndSession(userID, session.ID)
}

// Enroll 报名课程：
//  1. 无条件为 (课程, 用户) 新建一条默认 09:00-10:30 场次作为报名占位；
//  2. 为该课程名下的全部场次（含刚建的这条）各写一条报名记录。
//
// 整个序列在一个事务里执行，任何一步失败全部回滚。
// 重复报名不做拦截：会产生第二条占位场次和一组重叠的报名记录。
func (s *EnrollmentService) Enroll(courseID uint, username string) error {
	userID, err := s.resolveUser(username)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		session := &model.Session{
			CourseID:  courseID,
			StartTime: util.DefaultSessionStart,
			EndTime:   util.DefaultSessionEnd,
			UserID:    userID,
		}
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("create enrollment session: %w", err)
		}

		var sessionIDs []uint
		if err := tx.Model(&model.Session{}).
			Where("course_id = ?", courseID).
			Pluck("id", &sessionIDs).Error; err != nil {
			return fmt.Errorf("list course sessions: %w", err)
		}

		now := time.Now()
		for _, sessionID := range sessionIDs {
			enrollment := &model.Enrollment{
				UserID:    userID,
				SessionID: sessionID,
				Date:      now,
				Status:    model.EnrollmentStatusEnrolled,
			}
			if err := tx.Create(enrollment).Error; err != nil {
				return fmt.Errorf("create enrollment for session %d: %w", sessionID, err)
			}
		}
		return nil
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	monitoring.EnrollmentCounter.WithLabelValues("enroll", result).Inc()
	return err
}

// Withdraw 退课：找出该课程下和此用户报名关联的所有场次，
// 逐一删掉用户在该场次的报名记录，随后删除场次本身。
// 场次删除对其他已报名该场次的用户同样生效。
func (s *EnrollmentService) Withdraw(username string, courseID uint) (bool, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		return false, err
	}

	sessionIDs, err := s.EnrollmentRepo.SessionIDsForUserCourse(userID, courseID)
	if err != nil {
		return false, fmt.Errorf("find sessions to withdraw: %w", err)
	}
	if len(sessionIDs) == 0 {
		return false, util.ErrNoSessionsFound
	}

	var affected int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, sessionID := range sessionIDs {
			res := tx.Where("session_id = ? AND user_id = ?", sessionID, userID).Delete(&model.Enrollment{})
			if res.Error != nil {
				return fmt.Errorf("delete enrollments for session %d: %w", sessionID, res.Error)
			}
			affected += res.RowsAffected

			res = tx.Delete(&model.Session{}, sessionID)
			if res.Error != nil {
				return fmt.Errorf("delete session %d: %w", sessionID, res.Error)
			}
			affected += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		monitoring.EnrollmentCounter.WithLabelValues("withdraw", "error").Inc()
		return false, err
	}

	monitoring.EnrollmentCounter.WithLabelValues("withdraw", "ok").Inc()
	return affected > 0, nil
}

// GetUserEnrollments 返回用户已报名的课程。
// 同一课程下每条场次对应一行，与报名记录的粒度一致。
func (s *EnrollmentService) GetUserEnrollments(username string) ([]model.Course, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		return nil, err
	}
	return s.EnrollmentRepo.FindCoursesByUser(userID)
}
