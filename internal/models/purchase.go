package models

import (
	"gorm.io/gorm"
)

// Purchase records a client buying a product. UniqueLink is an opaque
// token generated at creation and never mutated afterwards; it
// identifies the purchase externally.
type Purchase struct {
	gorm.Model
	IdentityID uint     `gorm:"not null;index" json:"identity_id"`
	Identity   Identity `gorm:"foreignKey:IdentityID" json:"-"`
	ProductID  uint     `gorm:"not null;index" json:"product_id"`
	Product    Product  `gorm:"foreignKey:ProductID" json:"-"`
	UniqueLink string   `gorm:"uniqueIndex;not null" json:"unique_link"`
}
