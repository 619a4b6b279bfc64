package models

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	Email    string    `json:"email" gorm:"type:varchar(255);not null"`
	FullName *string   `json:"full_name,omitempty" gorm:"type:varchar(255)"`
	ImageURL *string   `json:"image_url,omitempty" gorm:"type:varchar(512)"`
}
