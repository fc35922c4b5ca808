package models

import (
	"time"
)

type RefreshToken struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uint      `gorm:"not null" json:"user_id"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Token          string    `gorm:"unique;not null" json:"-"`
	ExpirationDate time.Time `json:"expiration_date"`
}
