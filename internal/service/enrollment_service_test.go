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

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		repository.NewEnrollmentRepository(db),
		db,
	)
}

func TestEnrollCreatesDefaultSession(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	require.NoError(t, svc.Enroll(course.ID, "alice"))

	var sessions []model.Session
	require.NoError(t, db.Where("course_id = ? AND user_id = ?", course.ID, user.ID).Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.Equal(t, util.DefaultSessionStart, sessions[0].StartTime)
	assert.Equal(t, util.DefaultSessionEnd, sessions[0].EndTime)

	var enrollments []model.Enrollment
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&enrollments).Error)
	require.Len(t, enrollments, 1)
	assert.Equal(t, sessions[0].ID, enrollments[0].SessionID)
	assert.Equal(t, model.EnrollmentStatusEnrolled, enrollments[0].Status)

	enrolled, err := svc.CheckEnrolled("alice", course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestEnrollCoversExistingSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	instructor := createTestUser(t, db, "bob")
	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Databases", instructor.ID)

	// 教师排的场次也会在报名时一并挂上报名记录
	require.NoError(t, db.Create(&model.Session{
		CourseID:  course.ID,
		StartTime: "14:00:00",
		EndTime:   "15:30:00",
		UserID:    instructor.ID,
	}).Error)

	require.NoError(t, svc.Enroll(course.ID, "alice"))

	var enrollmentCount int64
	require.NoError(t, db.Model(&model.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollmentCount).Error)
	assert.Equal(t, int64(2), enrollmentCount)

	// 每条场次对应一行
	courses, err := svc.GetUserEnrollments("alice")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	for _, c := range courses {
		assert.Equal(t, "Databases", c.Name)
	}
}

func TestWithdrawRemovesSessionsAndEnrollments(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	require.NoError(t, svc.Enroll(course.ID, "alice"))

	removed, err := svc.Withdraw("alice", course.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var sessionCount int64
	require.NoError(t, db.Model(&model.Session{}).
		Where("course_id = ? AND user_id = ?", course.ID, user.ID).
		Count(&sessionCount).Error)
	assert.Zero(t, sessionCount)

	var enrollmentCount int64
	require.NoError(t, db.Model(&model.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollmentCount).Error)
	assert.Zero(t, enrollmentCount)

	enrolled, err := svc.CheckEnrolled("alice", course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestWithdrawWithoutEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	_, err := svc.Withdraw("alice", course.ID)
	assert.ErrorIs(t, err, util.ErrNoSessionsFound)
}

func TestDoubleEnrollProducesTwoSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	require.NoError(t, svc.Enroll(course.ID, "alice"))
	require.NoError(t, svc.Enroll(course.ID, "alice"))

	var sessionCount int64
	require.NoError(t, db.Model(&model.Session{}).
		Where("course_id = ? AND user_id = ?", course.ID, user.ID).
		Count(&sessionCount).Error)
	assert.Equal(t, int64(2), sessionCount)

	// 第一次报名写1行，第二次覆盖两条场次写2行
	var enrollmentCount int64
	require.NoError(t, db.Model(&model.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollmentCount).Error)
	assert.Equal(t, int64(3), enrollmentCount)

	// 退课把两条场次和全部报名记录清掉
	removed, err := svc.Withdraw("alice", course.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	enrolled, err := svc.CheckEnrolled("alice", course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestEnrollUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	owner := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", owner.ID)

	err := svc.Enroll(course.ID, "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = svc.CheckEnrolled("ghost", course.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestCheckEnrolledWithoutSession(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	enrolled, err := svc.CheckEnrolled("alice", course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestWithdrawRemovesSharedSession(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	instructor := createTestUser(t, db, "bob")
	createTestUser(t, db, "alice")
	createTestUser(t, db, "carol")
	course := createTestCourse(t, db, "Databases", instructor.ID)

	require.NoError(t, svc.Enroll(course.ID, "alice"))
	require.NoError(t, svc.Enroll(course.ID, "carol"))

	// carol 的报名覆盖了 alice 的占位场次，alice 退课会把它删掉，
	// carol 在该场次上的报名记录随之悬空
	removed, err := svc.Withdraw("alice", course.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var aliceSessions int64
	require.NoError(t, db.Model(&model.Session{}).
		Where("course_id = ? AND user_id = ?", course.ID, svcUserID(t, db, "alice")).
		Count(&aliceSessions).Error)
	assert.Zero(t, aliceSessions)

	enrolled, err := svc.CheckEnrolled("carol", course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func svcUserID(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	id, err := repository.NewUserRepository(db).ResolveID(username)
	require.NoError(t, err)
	return id
}
