package models

import (
	"gorm.io/gorm"
)

// Category is created lazily the first time a product references its
// name. The unique index is the arbiter when two requests race on the
// same new name.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Product belongs to exactly one category and is immutable after
// creation. Product names are deliberately not deduplicated.
type Product struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
}
