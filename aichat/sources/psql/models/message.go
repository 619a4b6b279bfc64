package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one row of the conversation. Assistant rows point at the user
// row that produced them via ParentID; legacy rows may lack the link.
type Message struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string     `json:"user_id" gorm:"type:varchar(255);not null;index"`
	Role      string     `json:"role" gorm:"type:varchar(50);not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	ModelTag  string     `json:"model_tag,omitempty" gorm:"type:varchar(100)"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	IsEdited  bool       `json:"is_edited" gorm:"not null;default:false"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}
