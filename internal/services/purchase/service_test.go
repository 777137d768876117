package purchase

import (
	"testing"

	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
	"zfunds/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockIdentityRepo struct {
	mock.Mock
}

type MockCatalogRepo struct {
	mock.Mock
}

type MockPurchaseRepo struct {
	mock.Mock
}

func TestAdvisorPurchaseProduct(t *testing.T) {
	advisorID := uint(1)
	clientID := uint(7)
	productID := uint(3)

	t.Run("records purchase for own client with fresh link", func(t *testing.T) {
		identityRepo := new(MockIdentityRepo)
		catalogRepo := new(MockCatalogRepo)
		purchaseRepo := new(MockPurchaseRepo)

		client := &models.Identity{Role: models.RoleUser, AdvisorID: &advisorID}
		client.ID = clientID
		product := &models.Product{Name: "Index Fund A"}
		product.ID = productID

		identityRepo.On("GetClientOfAdvisor", clientID, advisorID).Return(client, nil)
		catalogRepo.On("GetProductByID", productID).Return(product, nil)
		purchaseRepo.On("Create", mock.AnythingOfType("*models.Purchase")).
			Run(func(args mock.Arguments) {
				p := args.Get(0).(*models.Purchase)
				p.UniqueLink = utils.NewPurchaseLink()
			}).Return(nil)

		s := NewService(identityRepo, catalogRepo, purchaseRepo)
		p, err := s.AdvisorPurchaseProduct(advisorID, clientID, productID)

		assert.NoError(t, err)
		assert.Equal(t, clientID, p.IdentityID)
		assert.Equal(t, productID, p.ProductID)
		assert.NotEmpty(t, p.UniqueLink)

		identityRepo.AssertExpectations(t)
		catalogRepo.AssertExpectations(t)
		purchaseRepo.AssertExpectations(t)
	})

	t.Run("client of a different advisor is not found", func(t *testing.T) {
		identityRepo := new(MockIdentityRepo)
		catalogRepo := new(MockCatalogRepo)
		purchaseRepo := new(MockPurchaseRepo)

		// The client exists but is scoped to advisor 1; advisor 2's
		// constrained lookup must miss.
		identityRepo.On("GetClientOfAdvisor", clientID, uint(2)).
			Return((*models.Identity)(nil), repositories.ErrIdentityNotFound)

		s := NewService(identityRepo, catalogRepo, purchaseRepo)
		_, err := s.AdvisorPurchaseProduct(2, clientID, productID)

		assert.ErrorIs(t, err, domain.ErrClientNotFound)
		catalogRepo.AssertNotCalled(t, "GetProductByID", mock.Anything)
		purchaseRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("missing product", func(t *testing.T) {
		identityRepo := new(MockIdentityRepo)
		catalogRepo := new(MockCatalogRepo)
		purchaseRepo := new(MockPurchaseRepo)

		client := &models.Identity{Role: models.RoleUser, AdvisorID: &advisorID}
		client.ID = clientID

		identityRepo.On("GetClientOfAdvisor", clientID, advisorID).Return(client, nil)
		catalogRepo.On("GetProductByID", uint(99)).
			Return((*models.Product)(nil), repositories.ErrProductNotFound)

		s := NewService(identityRepo, catalogRepo, purchaseRepo)
		_, err := s.AdvisorPurchaseProduct(advisorID, clientID, 99)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		purchaseRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("repeat purchase of the same product is allowed", func(t *testing.T) {
		identityRepo := new(MockIdentityRepo)
		catalogRepo := new(MockCatalogRepo)
		purchaseRepo := new(MockPurchaseRepo)

		client := &models.Identity{Role: models.RoleUser, AdvisorID: &advisorID}
		client.ID = clientID
		product := &models.Product{Name: "Index Fund A"}
		product.ID = productID

		identityRepo.On("GetClientOfAdvisor", clientID, advisorID).Return(client, nil).Twice()
		catalogRepo.On("GetProductByID", productID).Return(product, nil).Twice()
		purchaseRepo.On("Create", mock.AnythingOfType("*models.Purchase")).
			Run(func(args mock.Arguments) {
				p := args.Get(0).(*models.Purchase)
				p.UniqueLink = utils.NewPurchaseLink()
			}).Return(nil).Twice()

		s := NewService(identityRepo, catalogRepo, purchaseRepo)
		first, err := s.AdvisorPurchaseProduct(advisorID, clientID, productID)
		assert.NoError(t, err)
		second, err := s.AdvisorPurchaseProduct(advisorID, clientID, productID)
		assert.NoError(t, err)

		assert.NotEqual(t, first.UniqueLink, second.UniqueLink)
	})
}

// Mock implementations

func (m *MockIdentityRepo) Create(identity *models.Identity) error {
	args := m.Called(identity)
	return args.Error(0)
}

func (m *MockIdentityRepo) GetByID(id uint) (*models.Identity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockIdentityRepo) GetByMobile(mobile string) (*models.Identity, error) {
	args := m.Called(mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockIdentityRepo) GetAdvisorByID(id uint) (*models.Identity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockIdentityRepo) GetClientOfAdvisor(id, advisorID uint) (*models.Identity, error) {
	args := m.Called(id, advisorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockIdentityRepo) ListClients(advisorID uint) ([]models.Identity, error) {
	args := m.Called(advisorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Identity), args.Error(1)
}

func (m *MockIdentityRepo) Update(identity *models.Identity) error {
	args := m.Called(identity)
	return args.Error(0)
}

func (m *MockIdentityRepo) IncrementTokenVersion(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

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

func (m *MockPurchaseRepo) Create(purchase *models.Purchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}
