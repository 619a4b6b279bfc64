package controllers

import (
	"aichat/aichat/services/llm"
	"aichat/aichat/sources/psql/dao"
	"aichat/aichat/sources/psql/models"
	"aichat/aichat/utils/logging"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConversationController struct {
	messageDAO *dao.MessageDAO
	responder  *llm.Responder
}

func NewConversationController(messageDAO *dao.MessageDAO, responder *llm.Responder) *ConversationController {
	return &ConversationController{messageDAO: messageDAO, responder: responder}
}

// Send persists the user message, derives the reply and persists it with a
// parent link back to the user message. The two inserts are independent
// writes: a failed assistant insert leaves the user row in place.
func (c *ConversationController) Send(ctx context.Context, userID, modelTag, prompt string) (*models.Message, *models.Message, error) {
	userMsg, err := c.messageDAO.Insert(ctx, userID, models.RoleUser, prompt, modelTag, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save user message: %w", err)
	}
	reply := c.responder.Respond(ctx, modelTag, prompt)
	aiMsg, err := c.messageDAO.Insert(ctx, userID, models.RoleAssistant, reply, modelTag, &userMsg.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save AI message: %w", err)
	}
	return userMsg, aiMsg, nil
}

// Edit overwrites the user message, then regenerates the linked assistant
// reply. The user row is already updated when the reply lookup fails, so a
// missing linked row surfaces as an error after a partial effect.
func (c *ConversationController) Edit(ctx context.Context, messageID uuid.UUID, newContent, modelTag, userID string) (*models.Message, *models.Message, error) {
	updated, err := c.messageDAO.UpdateContent(ctx, messageID, userID, newContent)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update message: %w", err)
	}
	reply := c.responder.Respond(ctx, modelTag, newContent)
	aiMsg, err := c.messageDAO.UpdateAssistantByParent(ctx, messageID, userID, reply)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update AI response: %w", err)
	}
	return updated, aiMsg, nil
}

// Regenerate recomputes the reply for a user message. The assistant row is
// resolved by parent link first; legacy rows without the link fall back to
// the earliest assistant message created after it. When neither resolves, a
// new linked row is created.
func (c *ConversationController) Regenerate(ctx context.Context, messageID uuid.UUID, modelTag, userID string) (*models.Message, error) {
	userMsg, err := c.messageDAO.GetUserMessage(ctx, messageID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user message: %w", err)
	}
	reply := c.responder.Respond(ctx, modelTag, userMsg.Content)

	target, err := c.messageDAO.FindAssistantByParent(ctx, messageID, userID)
	if err != nil {
		// Data-repair event: the reply exists without its parent link, or
		// not at all. Logged so the rows can be fixed up.
		logging.AppLogger.Warn("assistant reply not resolvable by parent link",
			zap.String("message_id", messageID.String()),
			zap.String("user_id", userID),
		)
		target, err = c.messageDAO.FirstAssistantAfter(ctx, userID, userMsg.CreatedAt)
	}
	if err != nil || target == nil {
		aiMsg, cerr := c.messageDAO.Insert(ctx, userID, models.RoleAssistant, reply, modelTag, &messageID)
		if cerr != nil {
			return nil, fmt.Errorf("failed to create AI response: %w", cerr)
		}
		return aiMsg, nil
	}

	aiMsg, err := c.messageDAO.UpdateContent(ctx, target.ID, userID, reply)
	if err != nil {
		return nil, fmt.Errorf("failed to update AI response: %w", err)
	}
	return aiMsg, nil
}

// Delete removes a user message and, best effort, its linked assistant
// reply. Only the user-row deletion can fail the operation.
func (c *ConversationController) Delete(ctx context.Context, messageID uuid.UUID, userID string) error {
	aiMsg, err := c.messageDAO.FindAssistantByParent(ctx, messageID, userID)
	if err == nil {
		if derr := c.messageDAO.DeleteByID(ctx, aiMsg.ID, userID); derr != nil {
			logging.AppLogger.Warn("failed to delete AI response",
				zap.String("message_id", aiMsg.ID.String()),
				zap.Error(derr),
			)
		}
	}
	if err := c.messageDAO.DeleteUserMessage(ctx, messageID, userID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// History returns the user's messages oldest first, truncated to limit.
func (c *ConversationController) History(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	msgs, err := c.messageDAO.History(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	return msgs, nil
}
