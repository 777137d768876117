package handlers

import (
	"zfunds/internal/models"
	"zfunds/internal/services/purchase"
	"zfunds/internal/utils"
	"zfunds/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	purchaseService purchase.Service
}

func NewPurchaseHandler(purchaseService purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// AdvisorPurchaseProduct records a purchase on behalf of one of the
// calling advisor's clients.
func (h *PurchaseHandler) AdvisorPurchaseProduct(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.IdentityClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		UserID    uint `json:"user_id"`
		ProductID uint `json:"product_id"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.RequiredID("user_id", input.UserID)
	v.RequiredID("product_id", input.ProductID)
	if !v.Valid() {
		return utils.BadRequest(c, "User ID and product ID are required.")
	}

	p, err := h.purchaseService.AdvisorPurchaseProduct(claims.IdentityID, input.UserID, input.ProductID)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message":          "Product purchased successfully.",
		"purchase_details": p,
	})
}
