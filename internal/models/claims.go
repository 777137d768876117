package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Advisor permissions
	PermissionClientRead    = "client:read"
	PermissionClientWrite   = "client:write"
	PermissionPurchaseWrite = "purchase:write"

	// Shared permissions
	PermissionCatalogRead = "catalog:read"
	PermissionSession     = "session:manage"
)

type IdentityClaims struct {
	jwt.RegisteredClaims
	IdentityID   uint     `json:"identity_id"`
	MobileNumber string   `json:"mobile_number"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *IdentityClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdvisor:
		return []string{
			PermissionClientRead,
			PermissionClientWrite,
			PermissionPurchaseWrite,
			PermissionCatalogRead,
			PermissionSession,
		}
	case RoleUser:
		return []string{
			PermissionCatalogRead,
			PermissionSession,
		}
	default:
		return []string{}
	}
}
