package models

import (
	"time"
)

type Wishlist struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	UserID       uint       `json:"-" gorm:"not null"`
	User         User       `json:"-" gorm:"foreignKey:UserID"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	Address      string     `json:"address,omitempty"`
	OccasionDate *time.Time `json:"occasion_date"`
	IsPublic     bool       `json:"is_public" gorm:"default:false"`
	Products     []Product  `json:"products" gorm:"many2many:wishlist_products"`
}
