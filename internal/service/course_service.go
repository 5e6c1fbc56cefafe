package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	courseCatalogKey      = "course_catalog"
	courseSearchKeyPrefix = "course_search:"
	courseCacheTTL        = 5 * time.Minute
)

type CourseService struct {
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCourseService(userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

func (s *CourseService) resolveUser(username string) (uint, error) {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrUserNotFound
		}
		return 0, fmt.Errorf("resolve user %q: %w", username, err)
	}
	return userID, nil
}

// CreateCourse 建课。占位视频行和课程行在一个事务里落库，
// 保证课程始终恰好有一条关联视频行。
func (s *CourseService) CreateCourse(name, description, image, ownerUsername string) (*model.Course, error) {
	userID, err := s.resolveUser(ownerUsername)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:        name,
		Description: description,
		Instructor:  ownerUsername,
		Image:       image,
		UserID:      userID,
	}
	if err := s.CourseRepo.CreateWithVideo(course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.invalidateCache()
	return course, nil
}

// CourseExists 存在性探查。查询失败上抛，不降级为 false
func (s *CourseService) CourseExists(id uint) (bool, error) {
	return s.CourseRepo.Exists(id)
}

// UpdateCourse 更新课程描述字段和主视频URL，返回旧图片文件名，
// 调用方负责清理被替换的旧图片
func (s *CourseService) UpdateCourse(id uint, name, description, image, videoURL string) (string, error) {
	oldImage, rows, err := s.CourseRepo.UpdateWithVideo(id, name, description, image, videoURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrCourseNotFound
		}
		return "", fmt.Errorf("update course %d: %w", id, err)
	}
	if rows == 0 {
		return "", util.ErrCourseNotFound
	}

	s.invalidateCache()
	return oldImage, nil
}

// DeleteCourse 删课并级联删除评论。场次/报名/占位视频不在级联范围内
func (s *CourseService) DeleteCourse(id uint) error {
	exists, err := s.CourseRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("check course %d: %w", id, err)
	}
	if !exists {
		return util.ErrCourseNotFound
	}

	if err := s.CourseRepo.DeleteWithComments(id); err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}

	s.invalidateCache()
	return nil
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetAllCourses 课程目录，带短TTL缓存
func (s *CourseService) GetAllCourses() ([]model.Course, error) {
	if cached, ok := s.cacheGet(courseCatalogKey); ok {
		return cached, nil
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	s.cacheSet(courseCatalogKey, courses)
	return courses, nil
}

// SearchByName 名称子串检索，大小写不敏感，无命中返回空切片
func (s *CourseService) SearchByName(name string) ([]model.Course, error) {
	key := courseSearchKeyPrefix + strings.ToLower(name)
	if cached, ok := s.cacheGet(key); ok {
		return cached, nil
	}

	courses, err := s.CourseRepo.SearchByName(name)
	if err != nil {
		return nil, err
	}

	s.cacheSet(key, courses)
	return courses, nil
}

// GetMyCourses 用户自己创建的课程
func (s *CourseService) GetMyCourses(username string) ([]model.Course, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		return nil, err
	}
	return s.CourseRepo.FindByOwner(userID)
}

func (s *CourseService) cacheGet(key string) ([]model.Course, bool) {
	if s.Redis == nil {
		return nil, false
	}

	val, err := s.Redis.Get(context.Background(), key).Result()
	if err != nil {
		return nil, false
	}

	var courses []model.Course
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, false
	}
	return courses, true
}

func (s *CourseService) cacheSet(key string, courses []model.Course) {
	if s.Redis == nil {
		return
	}

	data, err := json.Marshal(courses)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, data, courseCacheTTL).Err(); err != nil {
		logger.Log.Warn("course cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// 课程有写入时清掉目录和检索缓存
func (s *CourseService) invalidateCache() {
	if s.Redis == nil {
		return
	}

	ctx := context.Background()
	s.Redis.Del(ctx, courseCatalogKey)

	iter := s.Redis.Scan(ctx, 0, courseSearchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}
