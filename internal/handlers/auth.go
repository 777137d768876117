package handlers

import (
	"log"

	"zfunds/internal/models"
	"zfunds/internal/services/auth"
	"zfunds/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RefreshToken rotates a refresh token into a new token pair.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.Unauthorized(c, "Refresh token not provided")
	}

	tokens, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		log.Printf("Token refresh failed: %v", err)
		return utils.Unauthorized(c, "Invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"token": tokens,
	})
}

// Logout invalidates all outstanding tokens for the caller.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.IdentityClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	if err := h.authService.Logout(claims.IdentityID); err != nil {
		return utils.InternalError(c, "Failed to logout")
	}

	return utils.Success(c, fiber.Map{
		"message": "Successfully logged out",
	})
}
