package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title" gorm:"type:varchar(100);default:''"`
	Body      string    `json:"body" gorm:"type:text;default:''"`
	Image     string    `json:"image"`
	OwnerID   uint      `json:"owner" gorm:"not null"`
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID"`
	Tags      []Tag     `json:"tags" gorm:"many2many:post_tags"`
	Comments  []Comment `json:"-" gorm:"foreignKey:PostID"`
}
