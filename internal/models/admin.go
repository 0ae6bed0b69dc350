package models

import (
	"time"
)

// AdminUser can manage the theme/question catalog over the HTTP API.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
