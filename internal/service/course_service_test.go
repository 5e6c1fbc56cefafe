package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		nil,
	)
}

func TestCreateCourseCreatesPlaceholderVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	createTestUser(t, db, "bob")

	course, err := svc.CreateCourse("Algorithms", "Sorting and graphs", "cover.png", "bob")
	require.NoError(t, err)
	require.NotZero(t, course.ID)
	require.NotZero(t, course.VideoID)
	assert.Equal(t, "bob", course.Instructor)

	// 每门课恰好一条占位视频行
	var video model.Video
	require.NoError(t, db.First(&video, course.VideoID).Error)
	assert.Nil(t, video.SessionID)
	assert.Empty(t, video.URL)

	exists, err := svc.CourseExists(course.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateCourseUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	_, err := svc.CreateCourse("Algorithms", "desc", "", "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestCourseExistsFalseForUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	exists, err := svc.CourseExists(999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateCourseReturnsOldImage(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	createTestUser(t, db, "bob")
	course, err := svc.CreateCourse("Algorithms", "desc", "old.png", "bob")
	require.NoError(t, err)

	oldImage, err := svc.UpdateCourse(course.ID, "Algorithms II", "harder", "new.png", "https://cdn/video.mp4")
	require.NoError(t, err)
	assert.Equal(t, "old.png", oldImage)

	updated, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms II", updated.Name)
	assert.Equal(t, "new.png", updated.Image)

	var video model.Video
	require.NoError(t, db.First(&video, course.VideoID).Error)
	assert.Equal(t, "https://cdn/video.mp4", video.URL)
}

func TestUpdateCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	_, err := svc.UpdateCourse(12345, "x", "y", "", "")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestDeleteCourseCascadesCommentsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	user := createTestUser(t, db, "bob")
	course, err := svc.CreateCourse("Algorithms", "desc", "", "bob")
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Comment{UserID: user.ID, CourseID: course.ID, Comment: "great"}).Error)
	require.NoError(t, db.Create(&model.Session{CourseID: course.ID, StartTime: "09:00:00", EndTime: "10:30:00", UserID: user.ID}).Error)

	require.NoError(t, svc.DeleteCourse(course.ID))

	exists, err := svc.CourseExists(course.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var commentCount int64
	require.NoError(t, db.Model(&model.Comment{}).Where("course_id = ?", course.ID).Count(&commentCount).Error)
	assert.Zero(t, commentCount)

	// 场次不在级联范围内，删课后保留
	var sessionCount int64
	require.NoError(t, db.Model(&model.Session{}).Where("course_id = ?", course.ID).Count(&sessionCount).Error)
	assert.Equal(t, int64(1), sessionCount)
}

func TestDeleteCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	err := svc.DeleteCourse(777)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestSearchByName(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	createTestUser(t, db, "bob")
	_, err := svc.CreateCourse("Advanced Algorithms", "desc", "", "bob")
	require.NoError(t, err)
	_, err = svc.CreateCourse("Databases", "desc", "", "bob")
	require.NoError(t, err)

	// 大小写不敏感的子串匹配
	found, err := svc.SearchByName("aLGo")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Advanced Algorithms", found[0].Name)

	none, err := svc.SearchByName("quantum")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetAllCoursesAndMine(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	createTestUser(t, db, "bob")
	createTestUser(t, db, "alice")
	_, err := svc.CreateCourse("Algorithms", "desc", "", "bob")
	require.NoError(t, err)
	_, err = svc.CreateCourse("Databases", "desc", "", "alice")
	require.NoError(t, err)

	all, err := svc.GetAllCourses()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.GetMyCourses("alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Databases", mine[0].Name)
}
