package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	UserRepo       *repository.UserRepository
	SessionRepo    *repository.SessionRepository
	VideoRepo      *repository.VideoRepository
	StorageService *StorageService
}

func NewVideoService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	videoRepo *repository.VideoRepository,
	storageService *StorageService,
) *VideoService {
	return &VideoService{
		UserRepo:       userRepo,
		SessionRepo:    sessionRepo,
		VideoRepo:      videoRepo,
		StorageService: storageService,
	}
}

func (s *VideoService) GetVideo(id uint) (*model.Video, error) {
	video, err := s.VideoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func (s *VideoService) VideoExists(id uint) (bool, error) {
	return s.VideoRepo.Exists(id)
}

// GetCourseVideoURL 课程页展示的主视频URL
func (s *VideoService) GetCourseVideoURL(courseID uint) (string, error) {
	url, err := s.VideoRepo.FindURLByCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrCourseNotFound
		}
		return "", err
	}
	return url, nil
}

// UploadVideo 上传场次视频：挂到该用户的第一条场次下。
// 先落到临时文件探测时长，再交给存储后端。
func (s *VideoService) UploadVideo(ctx context.Context, username, title, description string, file *multipart.FileHeader) (*model.Video, error) {
	userID, err := s.UserRepo.ResolveID(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user %q: %w", username, err)
	}

	session, err := s.SessionRepo.FirstByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if !util.HasAllowedExtension(file.Filename, util.AllowedVideoExtensions) {
		return nil, util.ErrInvalidVideoExt
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo, "application/octet-stream"}); err != nil {
		return nil, fmt.Errorf("非法的文件内容: %v", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	// ffmpeg 探测需要本地路径
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	duration := ""
	if info, err := util.GetVideoInfo(tmpPath); err == nil {
		duration = util.FormatDuration(info.Duration)
	} else {
		logger.Log.Warn("video probe failed", zap.String("file", file.Filename), zap.Error(err))
	}

	filename := util.GenerateUploadName("videos", file.Filename)
	url, err := s.StorageService.UploadFile(ctx, filename, tmpPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("store video: %w", err)
	}

	video := &model.Video{
		SessionID:   &session.ID,
		Title:       title,
		URL:         url,
		Duration:    duration,
		Description: description,
		UploadDate:  time.Now(),
	}
	if err := s.VideoRepo.Create(video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return video, nil
}

func (s *VideoService) DeleteVideo(id uint) error {
	rows, err := s.VideoRepo.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("delete video %d: %w", id, err)
	}
	if rows == 0 {
		return util.ErrVideoNotFound
	}
	return nil
}
