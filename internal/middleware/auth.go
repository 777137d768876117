// Package middleware provides HTTP middleware components for the
// application, including JWT authentication and permission checks for
// the fiber web framework.
package middleware

import (
	"log"
	"strings"

	"zfunds/internal/models"
	"zfunds/internal/services/auth"
	"zfunds/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT token validation and identity
// authentication. It extracts the Bearer token, validates it, and adds
// the identity claims to the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler validates the Bearer token and stores claims in the request
// context. It checks the signature, the expiry and that the token
// version still matches the identity's current version.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	currentVersion, err := m.authService.GetTokenVersion(claims.IdentityID)
	if err != nil {
		log.Printf("Identity %d from token not found: %v", claims.IdentityID, err)
		return utils.Unauthorized(c, "invalid token")
	}

	if claims.TokenVersion != currentVersion {
		log.Printf("Token version mismatch for identity %d. Token: %d, DB: %d",
			claims.IdentityID, claims.TokenVersion, currentVersion)
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	c.Locals("identityID", claims.IdentityID)

	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.IdentityClaims)
		if !ok {
			return utils.Unauthorized(c, "unauthorized")
		}

		if claims.HasPermission(permission) {
			return c.Next()
		}

		return utils.Forbidden(c, "insufficient permissions")
	}
}
