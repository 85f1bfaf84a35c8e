package model

import "time"

// Task represents a single tracked item. CategoryID is a weak reference:
// deleting a category detaches its tasks instead of removing them.
type Task struct {
	ID          uint  `gorm:"primaryKey"`
	CategoryID  *uint `gorm:"index"`
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
