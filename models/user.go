package models

import (
	"time"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password hash in JSON
	FirstName     string         `gorm:"not null" json:"first_name"`
	LastName      string         `json:"last_name"`
	Gender        string         `json:"gender"` // "M", "F" or "N"
	Birthday      *time.Time     `json:"birthday"`
	UUID          string         `gorm:"uniqueIndex;not null" json:"uuid"` // stable public id used in share links
	IsActive      bool           `gorm:"default:true" json:"is_active"`    // false = soft deleted, record retained
	IsStaff       bool           `gorm:"default:false" json:"is_staff"`
	IsVerified    bool           `gorm:"default:false" json:"is_verified"`
	Posts         []Post         `json:"-" gorm:"foreignKey:OwnerID"`
	Comments      []Comment      `json:"-" gorm:"foreignKey:OwnerID"`
	Wishlists     []Wishlist     `json:"-" gorm:"foreignKey:UserID"`
	Products      []Product      `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
