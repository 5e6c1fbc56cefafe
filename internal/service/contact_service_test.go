package service

import (
	"learnhub_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndListMessages(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	require.NoError(t, svc.SendMessage("visitor@example.com", "question", "when does enrollment open?", ""))
	require.NoError(t, svc.SendMessage("alice@example.com", "feedback", "loved the course", "alice"))

	messages, err := svc.GetMessages()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "visitor@example.com", messages[0].Email)
	assert.Equal(t, "alice", messages[1].Username)
}
