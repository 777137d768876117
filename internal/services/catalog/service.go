// Package catalog manages categories and products.
package catalog

import (
	"errors"

	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
)

type Service interface {
	// AddProduct get-or-creates the category by name and creates the
	// product. Repeated calls with the same product name create
	// duplicate products; repeated calls with the same category name
	// reuse the single category row.
	AddProduct(name, description, categoryName string) (*models.Product, error)

	// GetProduct retrieves a product by ID.
	GetProduct(id uint) (*models.Product, error)
}

type service struct {
	catalogRepo repositories.CatalogRepository
}

func NewService(catalogRepo repositories.CatalogRepository) Service {
	return &service{
		catalogRepo: catalogRepo,
	}
}

func (s *service) AddProduct(name, description, categoryName string) (*models.Product, error) {
	product, err := s.catalogRepo.CreateProductWithCategory(name, description, categoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, domain.ErrDuplicateCategory
		}
		return nil, err
	}
	return product, nil
}

func (s *service) GetProduct(id uint) (*models.Product, error) {
	product, err := s.catalogRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
