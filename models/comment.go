package models

import (
	"time"
)

// Comment is either a top-level comment (ParentCommentID nil) or a reply to a
// top-level comment. The unique index on parent_comment_id enforces the
// one-reply-per-parent rule at the schema level, so two racing reply inserts
// resolve to one success and one duplicate-key error.
type Comment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Body            string    `json:"body" gorm:"type:text;not null"`
	OwnerID         uint      `json:"-" gorm:"not null"`
	Owner           User      `json:"-" gorm:"foreignKey:OwnerID"`
	PostID          uint      `json:"post" gorm:"not null"`
	Post            Post      `json:"-" gorm:"foreignKey:PostID"`
	ParentCommentID *uint     `json:"parent_comment" gorm:"uniqueIndex"`
}
