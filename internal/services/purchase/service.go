// Package purchase records purchase events in the ledger.
package purchase

import (
	"errors"

	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
)

type Service interface {
	// AdvisorPurchaseProduct records a purchase of a product on behalf
	// of one of the advisor's own clients. The client lookup is
	// advisor-scoped: an identity that exists under a different
	// advisor is reported as not found.
	AdvisorPurchaseProduct(advisorID, userID, productID uint) (*models.Purchase, error)
}

type service struct {
	identityRepo repositories.IdentityRepository
	catalogRepo  repositories.CatalogRepository
	purchaseRepo repositories.PurchaseRepository
}

func NewService(
	identityRepo repositories.IdentityRepository,
	catalogRepo repositories.CatalogRepository,
	purchaseRepo repositories.PurchaseRepository,
) Service {
	return &service{
		identityRepo: identityRepo,
		catalogRepo:  catalogRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *service) AdvisorPurchaseProduct(advisorID, userID, productID uint) (*models.Purchase, error) {
	client, err := s.identityRepo.GetClientOfAdvisor(userID, advisorID)
	if err != nil {
		if errors.Is(err, repositories.ErrIdentityNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	product, err := s.catalogRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	// Duplicate purchases of the same product by the same client are
	// allowed; the ledger is append-only.
	p := &models.Purchase{
		IdentityID: client.ID,
		ProductID:  product.ID,
	}
	if err := s.purchaseRepo.Create(p); err != nil {
		return nil, err
	}

	return p, nil
}
