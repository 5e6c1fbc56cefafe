package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
	)
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	createTestUser(t, db, "alice")

	user, err := svc.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.GetProfile("ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	require.NoError(t, svc.UpdateUsername("alice2", "alice"))

	_, err := svc.GetProfile("alice")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	_, err = svc.GetProfile("alice2")
	require.NoError(t, err)

	// 已占用的用户名拒绝
	err = svc.UpdateUsername("bob", "alice2")
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestUpdateEmailAndProfilePic(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	createTestUser(t, db, "alice")

	require.NoError(t, svc.UpdateEmail("new@example.com", "alice"))
	require.NoError(t, svc.UpdateProfilePic("/uploads/avatars/a.png", "alice"))

	user, err := svc.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "/uploads/avatars/a.png", user.ProfilePic)

	image, err := svc.GetUserImage("alice")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/a.png", image)

	assert.ErrorIs(t, svc.UpdateEmail("x@example.com", "ghost"), util.ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	createTestUser(t, db, "alice")

	require.NoError(t, svc.UpdatePassword("alice", "newpassword1"))

	user, err := svc.GetProfile("alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword1")))
}

func TestDeleteUserRejectsCourseOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := createTestUser(t, db, "bob")
	createTestCourse(t, db, "Algorithms", user.ID)

	err := svc.DeleteUser(user.ID)
	assert.ErrorIs(t, err, util.ErrUserHasCourses)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := createTestUser(t, db, "alice")

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err := svc.GetProfile("alice")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(9999), util.ErrUserNotFound)
}
