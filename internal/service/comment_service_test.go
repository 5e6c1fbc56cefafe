package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewUserRepository(db),
		repository.NewCommentRepository(db),
	)
}

func TestAddAndListComments(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	require.NoError(t, svc.AddComment("alice", course.ID, "great course"))
	require.NoError(t, svc.AddComment("alice", course.ID, "second thoughts"))

	comments, err := svc.GetComments(course.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "great course", comments[0].Comment)
	assert.Equal(t, user.ID, comments[0].UserID)

	assert.ErrorIs(t, svc.AddComment("ghost", course.ID, "hi"), util.ErrUserNotFound)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	user := createTestUser(t, db, "alice")
	course := createTestCourse(t, db, "Algorithms", user.ID)

	require.NoError(t, svc.AddComment("alice", course.ID, "to be removed"))

	comments, err := svc.GetComments(course.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	require.NoError(t, svc.DeleteComment(comments[0].ID, "alice", course.ID))

	remaining, err := svc.GetComments(course.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// 该用户在该课程下没有评论时报不存在
	assert.ErrorIs(t, svc.DeleteComment(comments[0].ID, "alice", course.ID), util.ErrCommentNotFound)
}
