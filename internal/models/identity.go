package models

import (
	"gorm.io/gorm"
)

// Identity roles. An identity is created without a role and is
// promoted through one of the signup flows.
const (
	RoleAdvisor = "advisor"
	RoleUser    = "user"
)

// Identity is a mobile-number-keyed account. Clients carry a
// self-referential link to the advisor that onboarded them.
type Identity struct {
	gorm.Model
	MobileNumber string    `gorm:"uniqueIndex;not null" json:"mobile_number"`
	Name         string    `json:"name"`
	OTPSecret    string    `gorm:"not null" json:"-"` // per-identity TOTP seed, never exposed
	Role         string    `gorm:"default:''" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	AdvisorID    *uint     `gorm:"index" json:"advisor_id,omitempty"`
	Advisor      *Identity `gorm:"foreignKey:AdvisorID" json:"-"`
	TokenVersion int       `gorm:"default:1" json:"-"`
}

// IsAdvisor reports whether the identity has been promoted to advisor.
func (i *Identity) IsAdvisor() bool {
	return i.Role == RoleAdvisor
}
