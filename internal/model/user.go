package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Login        string    `gorm:"size:20;uniqueIndex;not null" json:"login"`
	Email        string    `gorm:"size:20;uniqueIndex;not null" json:"email"` // phone number, +375 XX XXX XX XX
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         *string   `gorm:"size:20" json:"role,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
