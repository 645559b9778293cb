package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:191;not null"`
	Hash      string `gorm:"size:255;not null"`
	CreatedAt time.Time
}
