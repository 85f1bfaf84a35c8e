package model

import "time"

// DefaultCategoryColor is assigned when a category is created without an
// explicit color.
const DefaultCategoryColor = "#10B981"

// Category groups tasks by area (work, shopping, health, etc.). Name
// uniqueness is case-insensitive and enforced above the store.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Color     string
	CreatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:CategoryID"`
}
