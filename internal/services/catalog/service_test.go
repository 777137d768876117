package catalog

import (
	"testing"

	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepo struct {
	mock.Mock
}

func TestAddProduct(t *testing.T) {
	t.Run("creates product in existing or new category", func(t *testing.T) {
		repo := new(MockCatalogRepo)

		product := &models.Product{
			Name:        "Index Fund A",
			Description: "Broad market index fund",
			Category:    models.Category{Name: "Mutual Funds"},
		}
		repo.On("CreateProductWithCategory", "Index Fund A", "Broad market index fund", "Mutual Funds").
			Return(product, nil)

		s := NewService(repo)
		got, err := s.AddProduct("Index Fund A", "Broad market index fund", "Mutual Funds")

		assert.NoError(t, err)
		assert.Equal(t, "Index Fund A", got.Name)
		assert.Equal(t, "Mutual Funds", got.Category.Name)
		repo.AssertExpectations(t)
	})

	t.Run("category race surfaces uniqueness violation", func(t *testing.T) {
		repo := new(MockCatalogRepo)

		repo.On("CreateProductWithCategory", "Index Fund A", "desc", "Mutual Funds").
			Return((*models.Product)(nil), repositories.ErrDuplicateCategory)

		s := NewService(repo)
		_, err := s.AddProduct("Index Fund A", "desc", "Mutual Funds")

		assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("missing product", func(t *testing.T) {
		repo := new(MockCatalogRepo)

		repo.On("GetProductByID", uint(99)).
			Return((*models.Product)(nil), repositories.ErrProductNotFound)

		s := NewService(repo)
		_, err := s.GetProduct(99)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

// Mock implementations

func (m *MockCatalogRepo) CreateProductWithCategory(name, description, categoryName string) (*models.Product, error) {
	args := m.Called(name, description, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepo) GetProductByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
