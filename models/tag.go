package models

import (
	"time"
)

// Tag is scoped to the user that created it; uniqueness per (name, user) is
// get-or-create semantics, not a schema constraint.
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `json:"name" gorm:"not null"`
	UserID    uint      `json:"-" gorm:"not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}
