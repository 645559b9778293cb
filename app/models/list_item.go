package models

import "time"

// ListItem is one entry on a user's grocery list. There is at most one row
// per (UserID, Item) pair; adding an existing item folds into it instead of
// creating a duplicate.
type ListItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	Item      string    `gorm:"size:255;not null"`
	Quantity  int       `gorm:"not null"`
	Purchased bool      `gorm:"not null;default:false"`
	DateTime  time.Time `gorm:"autoCreateTime"`
}

func (ListItem) TableName() string { return "lists" }
