package dao

import (
	"aichat/aichat/sources/psql/models"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageDAO struct {
	DB *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{DB: db}
}

func (dao *MessageDAO) Insert(ctx context.Context, userID, role, content, modelTag string, parentID *uuid.UUID) (*models.Message, error) {
	msg := models.Message{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		ModelTag:  modelTag,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := dao.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (dao *MessageDAO) GetUserMessage(ctx context.Context, id uuid.UUID, userID string) (*models.Message, error) {
	var msg models.Message
	err := dao.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND role = ?", id, userID, models.RoleUser).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindAssistantByParent resolves the assistant reply through its parent link.
func (dao *MessageDAO) FindAssistantByParent(ctx context.Context, parentID uuid.UUID, userID string) (*models.Message, error) {
	var msg models.Message
	err := dao.DB.WithContext(ctx).
		Where("parent_id = ? AND user_id = ? AND role = ?", parentID, userID, models.RoleAssistant).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FirstAssistantAfter is the fallback for legacy rows without a parent link:
// the earliest assistant message created after the given time.
func (dao *MessageDAO) FirstAssistantAfter(ctx context.Context, userID string, after time.Time) (*models.Message, error) {
	var msg models.Message
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND role = ? AND created_at > ?", userID, models.RoleAssistant, after).
		Order("created_at ASC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateContent overwrites a message's content, marking it edited. Returns
// gorm.ErrRecordNotFound when no row matches the id/owner filter.
func (dao *MessageDAO) UpdateContent(ctx context.Context, id uuid.UUID, userID, content string) (*models.Message, error) {
	now := time.Now().UTC()
	res := dao.DB.WithContext(ctx).Model(&models.Message{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"content":    content,
			"is_edited":  true,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var msg models.Message
	if err := dao.DB.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateAssistantByParent overwrites the content of the assistant reply
// linked to the given user message. Expects exactly one linked row.
func (dao *MessageDAO) UpdateAssistantByParent(ctx context.Context, parentID uuid.UUID, userID, content string) (*models.Message, error) {
	now := time.Now().UTC()
	res := dao.DB.WithContext(ctx).Model(&models.Message{}).
		Where("parent_id = ? AND user_id = ? AND role = ?", parentID, userID, models.RoleAssistant).
		Updates(map[string]interface{}{
			"content":    content,
			"is_edited":  true,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var msg models.Message
	err := dao.DB.WithContext(ctx).
		Where("parent_id = ? AND user_id = ? AND role = ?", parentID, userID, models.RoleAssistant).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (dao *MessageDAO) DeleteByID(ctx context.Context, id uuid.UUID, userID string) error {
	return dao.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Message{}).Error
}

// DeleteUserMessage removes a user-role message. Zero matched rows is not an
// error, mirroring plain filtered deletes.
func (dao *MessageDAO) DeleteUserMessage(ctx context.Context, id uuid.UUID, userID string) error {
	return dao.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND role = ?", id, userID, models.RoleUser).
		Delete(&models.Message{}).Error
}

// History returns up to limit messages for the user, oldest first. A limit
// of zero yields an empty slice.
func (dao *MessageDAO) History(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		return []models.Message{}, nil
	}
	msgs := []models.Message{}
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
