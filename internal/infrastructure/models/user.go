package models

import (
	"time"
)

type User struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Username       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(320);uniqueIndex;not null"`
	Role           string    `gorm:"type:varchar(20);not null"`
	HashedPassword string    `gorm:"type:varchar(1024);not null"`
	IsActive       bool      `gorm:"not null"`
	IsSuperuser    bool      `gorm:"not null"`
	IsVerified     bool      `gorm:"not null"`
	RegistryAt     time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
