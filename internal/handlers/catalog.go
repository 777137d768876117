package handlers

import (
	"zfunds/internal/services/catalog"
	"zfunds/internal/utils"
	"zfunds/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// AddProduct creates a product, lazily creating its category.
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	var input struct {
		ProductName        string `json:"product_name"`
		ProductDescription string `json:"product_description"`
		CategoryName       string `json:"category_name"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("product_name", input.ProductName)
	v.Required("product_description", input.ProductDescription)
	v.Required("category_name", input.CategoryName)
	if !v.Valid() {
		return utils.BadRequest(c, "Product name, description, and category are required.")
	}

	product, err := h.catalogService.AddProduct(input.ProductName, input.ProductDescription, input.CategoryName)
	if err != nil {
		return mapAdvisoryError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message": "Product added successfully.",
		"product_details": fiber.Map{
			"id":       product.ID,
			"name":     product.Name,
			"category": product.Category,
		},
	})
}
