package handlers

import (
	"errors"
	"log"
	"strconv"

	"zfunds/internal/config"
	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/services/advisory"
	"zfunds/internal/utils"
	"zfunds/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AdvisoryHandler struct {
	advisoryService advisory.Service
}

func NewAdvisoryHandler(advisoryService advisory.Service) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryService: advisoryService,
	}
}

// AdvisorSignup promotes an OTP-verified identity to advisor and
// returns a session credential.
func (h *AdvisoryHandler) AdvisorSignup(c *fiber.Ctx) error {
	var input struct {
		MobileNumber string `json:"mobile_number"`
		OTP          string `json:"otp"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("mobile_number", input.MobileNumber)
	v.Required("otp", input.OTP)
	if !v.Valid() {
		return utils.BadRequest(c, "Mobile number and OTP are required.")
	}

	_, tokens, err := h.advisoryService.AdvisorSignup(input.MobileNumber, input.OTP)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message": "Advisor account created successfully.",
		"token":   tokens,
	})
}

// UserSignup confirms an OTP-verified identity as a user.
func (h *AdvisoryHandler) UserSignup(c *fiber.Ctx) error {
	var input struct {
		Name         string `json:"name"`
		MobileNumber string `json:"mobile_number"`
		OTP          string `json:"otp"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("name", input.Name)
	v.Required("mobile_number", input.MobileNumber)
	v.Required("otp", input.OTP)
	if !v.Valid() {
		return utils.BadRequest(c, "Name, mobile number, and OTP are required.")
	}

	identity, err := h.advisoryService.UserSignup(input.Name, input.MobileNumber, input.OTP)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message":      "User account created successfully.",
		"user_details": identity,
	})
}

// RequestOTP issues the current one-time code for an identity. The
// code is only echoed outside production; in production it goes to
// the SMS gateway.
func (h *AdvisoryHandler) RequestOTP(c *fiber.Ctx) error {
	var input struct {
		MobileNumber string `json:"mobile_number"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("mobile_number", input.MobileNumber)
	if !v.Valid() {
		return utils.BadRequest(c, "Mobile number is required.")
	}

	code, err := h.advisoryService.RequestOTP(input.MobileNumber)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	if config.IsProduction() {
		log.Printf("OTP issued for %s", input.MobileNumber)
		return utils.Success(c, fiber.Map{"message": "OTP sent."})
	}

	return utils.Success(c, fiber.Map{
		"message": "OTP sent.",
		"otp":     code,
	})
}

// AddClient creates a new client identity linked to the calling
// advisor.
func (h *AdvisoryHandler) AddClient(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.IdentityClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		ClientName   string `json:"client_name"`
		ClientMobile string `json:"client_mobile"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("client_name", input.ClientName)
	v.Required("client_mobile", input.ClientMobile)
	if !v.Valid() {
		return utils.BadRequest(c, "Client name and mobile number are required.")
	}

	client, err := h.advisoryService.AddClient(claims.IdentityID, input.ClientName, input.ClientMobile)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message":        "Client added successfully.",
		"client_details": client,
	})
}

// ListClients returns all clients linked to the advisor.
func (h *AdvisoryHandler) ListClients(c *fiber.Ctx) error {
	advisorID, err := strconv.ParseUint(c.Params("advisor_id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid advisor ID")
	}

	clients, err := h.advisoryService.ListClients(uint(advisorID))
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"clients": clients,
	})
}

// mapAdvisoryError translates domain errors to the HTTP taxonomy:
// validation 400, not-found 404, uniqueness 409, anything else 500.
func mapAdvisoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidOTP):
		return utils.BadRequest(c, "Invalid OTP.")
	case errors.Is(err, domain.ErrIdentityNotFound):
		return utils.NotFound(c, "User not found.")
	case errors.Is(err, domain.ErrAdvisorNotFound):
		return utils.NotFound(c, "Advisor not found.")
	case errors.Is(err, domain.ErrClientNotFound):
		return utils.NotFound(c, "User not found or not associated with the advisor.")
	case errors.Is(err, domain.ErrProductNotFound):
		return utils.NotFound(c, "Product not found.")
	case errors.Is(err, domain.ErrMobileTaken):
		return utils.Conflict(c, "Mobile number already registered.")
	case errors.Is(err, domain.ErrDuplicateCategory):
		return utils.Conflict(c, "Category was created concurrently, please retry.")
	default:
		log.Printf("Unhandled service error: %v", err)
		return utils.InternalError(c, "Internal server error")
	}
}
