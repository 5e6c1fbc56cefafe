package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"}
	require.NoError(t, svc.Register(user))

	var stored model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "s3cretpass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cretpass")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(&model.User{Username: "alice", Email: "a@example.com", Password: "s3cretpass"}))

	err := svc.Register(&model.User{Username: "alice", Email: "b@example.com", Password: "otherpass1"})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(&model.User{Username: "alice", Email: "a@example.com", Password: "s3cretpass"}))

	token, user, err := svc.Login("alice", "s3cretpass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(&model.User{Username: "alice", Email: "a@example.com", Password: "s3cretpass"}))

	_, _, err := svc.Login("alice", "wrongpass")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody", "s3cretpass")
	assert.Error(t, err)
}
