package dao

import (
	"context"
	"testing"
	"time"

	"aichat/aichat/sources/psql/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMessageDAO(t *testing.T) *MessageDAO {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}))
	return NewMessageDAO(db)
}

func TestInsertAndParentLink(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	userMsg, err := dao.Insert(ctx, "u1", models.RoleUser, "hi", "gpt-4o", nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userMsg.ID)
	assert.False(t, userMsg.IsEdited)
	assert.Nil(t, userMsg.UpdatedAt)

	aiMsg, err := dao.Insert(ctx, "u1", models.RoleAssistant, "reply", "gpt-4o", &userMsg.ID)
	require.NoError(t, err)
	require.NotNil(t, aiMsg.ParentID)
	assert.Equal(t, userMsg.ID, *aiMsg.ParentID)

	found, err := dao.FindAssistantByParent(ctx, userMsg.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, aiMsg.ID, found.ID)
}

func TestFindAssistantByParentScopedToOwner(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	userMsg, err := dao.Insert(ctx, "u1", models.RoleUser, "hi", "gpt-4o", nil)
	require.NoError(t, err)
	_, err = dao.Insert(ctx, "u1", models.RoleAssistant, "reply", "gpt-4o", &userMsg.ID)
	require.NoError(t, err)

	_, err = dao.FindAssistantByParent(ctx, userMsg.ID, "someone-else")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHistoryOrderingAndLimit(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := dao.Insert(ctx, "u1", models.RoleUser, "msg", "gpt-4o", nil)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
	_, err := dao.Insert(ctx, "u2", models.RoleUser, "other user", "gpt-4o", nil)
	require.NoError(t, err)

	msgs, err := dao.History(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
	for _, m := range msgs {
		assert.Equal(t, "u1", m.UserID)
	}
}

func TestHistoryZeroLimit(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	_, err := dao.Insert(ctx, "u1", models.RoleUser, "msg", "gpt-4o", nil)
	require.NoError(t, err)

	msgs, err := dao.History(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestUpdateContentNotFound(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	_, err := dao.UpdateContent(ctx, uuid.New(), "u1", "new")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateContentSetsEditedFlag(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	msg, err := dao.Insert(ctx, "u1", models.RoleUser, "before", "gpt-4o", nil)
	require.NoError(t, err)

	updated, err := dao.UpdateContent(ctx, msg.ID, "u1", "after")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.True(t, updated.IsEdited)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, msg.ID, updated.ID)
}

func TestFirstAssistantAfter(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	userMsg, err := dao.Insert(ctx, "u1", models.RoleUser, "hi", "gpt-4o", nil)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	// Unlinked legacy reply
	first, err := dao.Insert(ctx, "u1", models.RoleAssistant, "old reply", "gpt-4o", nil)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = dao.Insert(ctx, "u1", models.RoleAssistant, "later reply", "gpt-4o", nil)
	require.NoError(t, err)

	found, err := dao.FirstAssistantAfter(ctx, "u1", userMsg.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestDeleteUserMessageIgnoresAssistantRows(t *testing.T) {
	dao := setupMessageDAO(t)
	ctx := context.Background()

	userMsg, err := dao.Insert(ctx, "u1", models.RoleUser, "hi", "gpt-4o", nil)
	require.NoError(t, err)
	aiMsg, err := dao.Insert(ctx, "u1", models.RoleAssistant, "reply", "gpt-4o", &userMsg.ID)
	require.NoError(t, err)

	// Role filter keeps the delete from touching assistant rows.
	require.NoError(t, dao.DeleteUserMessage(ctx, aiMsg.ID, "u1"))
	_, err = dao.FindAssistantByParent(ctx, userMsg.ID, "u1")
	assert.NoError(t, err)

	require.NoError(t, dao.DeleteUserMessage(ctx, userMsg.ID, "u1"))
	msgs, err := dao.History(ctx, "u1", 50)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, models.RoleAssistant, msgs[0].Role)
}
