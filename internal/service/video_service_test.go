package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVideoService(db *gorm.DB) *VideoService {
	return NewVideoService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		repository.NewVideoRepository(db),
		nil,
	)
}

func TestGetVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)
	session := &model.Session{CourseID: course.ID, StartTime: "09:00:00", EndTime: "10:30:00", UserID: user.ID}
	require.NoError(t, db.Create(session).Error)

	video := &model.Video{
		SessionID:  &session.ID,
		Title:      "Lecture 1",
		URL:        "/uploads/videos/lec1.mp4",
		Duration:   "01:15:00",
		UploadDate: time.Now(),
	}
	require.NoError(t, db.Create(video).Error)

	got, err := svc.GetVideo(video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lecture 1", got.Title)

	exists, err := svc.VideoExists(video.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.GetVideo(9999)
	assert.ErrorIs(t, err, util.ErrVideoNotFound)
}

func TestGetCourseVideoURL(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	// 建课时生成的占位行，URL 为空
	url, err := svc.GetCourseVideoURL(course.ID)
	require.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, repository.NewVideoRepository(db).UpdateURL(course.VideoID, "https://cdn/main.mp4"))

	url, err = svc.GetCourseVideoURL(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/main.mp4", url)

	_, err = svc.GetCourseVideoURL(9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestDeleteVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db)

	video := &model.Video{Title: "orphan", UploadDate: time.Now()}
	require.NoError(t, db.Create(video).Error)

	require.NoError(t, svc.DeleteVideo(video.ID))
	assert.ErrorIs(t, svc.DeleteVideo(video.ID), util.ErrVideoNotFound)
}
