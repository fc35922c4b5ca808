package models

import (
	"time"
)

const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

type Product struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UserID     uint       `json:"-" gorm:"not null"`
	User       User       `json:"-" gorm:"foreignKey:UserID"`
	Name       string     `json:"name" gorm:"not null"`
	Priority   string     `json:"priority" gorm:"type:varchar(6);default:LOW"`
	Price      string     `json:"price" gorm:"type:decimal(10,2)"`
	Link       string     `json:"link,omitempty"`
	Image      string     `json:"image,omitempty"`
	Notes      string     `json:"notes,omitempty" gorm:"type:text"`
	IsReserved bool       `json:"is_reserved" gorm:"default:false"`
	Wishlists  []Wishlist `json:"-" gorm:"many2many:wishlist_products"`
}
