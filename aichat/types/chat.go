package types

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message mirrors one persisted row of the messages table as it appears on
// the wire.
type Message struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ModelTag  string     `json:"model_tag,omitempty"`
	ParentID  *string    `json:"parent_id,omitempty"`
	IsEdited  bool       `json:"is_edited"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SendRequest struct {
	ModelTag string `json:"modelTag" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
}

type SendResponse struct {
	UserMessage Message `json:"userMessage"`
	AIMessage   Message `json:"aiMessage"`
}

type EditRequest struct {
	MessageID  string `json:"messageId" validate:"required"`
	NewContent string `json:"newContent" validate:"required"`
	ModelTag   string `json:"modelTag" validate:"required"`
	UserID     string `json:"userId" validate:"required"`
}

type EditResponse struct {
	UpdatedMessage Message `json:"updatedMessage"`
	AIMessage      Message `json:"aiMessage"`
}

type RegenerateRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	ModelTag  string `json:"modelTag" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

type DeleteRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
