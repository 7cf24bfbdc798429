package models

import "time"

type Group struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `json:"posts,omitempty" gorm:"foreignKey:GroupID"`
}

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"required"`
}
