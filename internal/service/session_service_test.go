package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) *SessionService {
	return NewSessionService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
	)
}

func TestCreateSessionAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	id, err := svc.CreateSession(course.ID, "14:00:00", "15:30:00", "bob")
	require.NoError(t, err)
	require.NotZero(t, id)

	sessions, err := svc.GetSessionsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "14:00:00", sessions[0].StartTime)
	assert.Equal(t, "15:30:00", sessions[0].EndTime)
	assert.Equal(t, user.ID, sessions[0].UserID)

	exists, err := svc.SessionExists(id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateSessionUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	_, err := svc.CreateSession(course.ID, "14:00:00", "15:30:00", "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateSessionReportsAffectedRows(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	id, err := svc.CreateSession(course.ID, "14:00:00", "15:30:00", "bob")
	require.NoError(t, err)

	rows, err := svc.UpdateSession(id, course.ID, "16:00:00", "17:30:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	sessions, err := svc.GetSessionsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "16:00:00", sessions[0].StartTime)

	// 不存在的场次返回0行，不报错
	rows, err = svc.UpdateSession(9999, course.ID, "16:00:00", "17:30:00")
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteSession(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(db)

	user := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	id, err := svc.CreateSession(course.ID, "14:00:00", "15:30:00", "bob")
	require.NoError(t, err)

	rows, err := svc.DeleteSession(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	exists, err := svc.SessionExists(id)
	require.NoError(t, err)
	assert.False(t, exists)

	rows, err = svc.DeleteSession(id)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
