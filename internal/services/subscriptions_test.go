package services

import (
	"testing"

	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriptionCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.Subscription{}).Count(&count).Error)
	return count
}

func TestSubscribeTogglesListTopicsFlag(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")
	topic := mustCreateTopic(t, "go", "all things go")

	require.NoError(t, Subscribe("a@x.com", topic.ID))

	listed, err := ListTopics("a@x.com")
	require.NoError(t, err)
	require.Len(t, listed.Topics, 1)
	assert.True(t, listed.Topics[0].Subscription)

	require.NoError(t, Unsubscribe("a@x.com", topic.ID))

	listed, err = ListTopics("a@x.com")
	require.NoError(t, err)
	require.Len(t, listed.Topics, 1)
	assert.False(t, listed.Topics[0].Subscription)
}

func TestSubscribeFlagIsPerUser(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")
	mustRegister(t, "bob", "b@x.com", "Abc123!@")
	topic := mustCreateTopic(t, "go", "all things go")

	require.NoError(t, Subscribe("a@x.com", topic.ID))

	listed, err := ListTopics("b@x.com")
	require.NoError(t, err)
	require.Len(t, listed.Topics, 1)
	assert.False(t, listed.Topics[0].Subscription)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")
	topic := mustCreateTopic(t, "go", "all things go")

	require.NoError(t, Subscribe("a@x.com", topic.ID))
	require.NoError(t, Subscribe("a@x.com", topic.ID))

	assert.EqualValues(t, 1, subscriptionCount(t))
}

func TestSubscribeUnknownTopic(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")

	err := Subscribe("a@x.com", 999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualValues(t, 0, subscriptionCount(t))
}

func TestUnsubscribeWithoutSubscriptionIsSilent(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")
	topic := mustCreateTopic(t, "go", "all things go")

	assert.NoError(t, Unsubscribe("a@x.com", topic.ID))
}

func TestResubscribeAfterUnsubscribe(t *testing.T) {
	setupTestDB(t)
	setupTestSecret(t)

	mustRegister(t, "alice", "a@x.com", "Abc123!@")
	topic := mustCreateTopic(t, "go", "all things go")

	require.NoError(t, Subscribe("a@x.com", topic.ID))
	require.NoError(t, Unsubscribe("a@x.com", topic.ID))
	require.NoError(t, Subscribe("a@x.com", topic.ID))

	assert.EqualValues(t, 1, subscriptionCount(t))
}
