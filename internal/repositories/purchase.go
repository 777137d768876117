package repositories

import (
	"errors"

	"zfunds/internal/models"
	"zfunds/internal/utils"

	"gorm.io/gorm"
)

// PurchaseRepository defines the interface for purchase ledger
// operations. The ledger is append-only.
type PurchaseRepository interface {
	// Create appends a purchase, generating its unique link when absent
	Create(purchase *models.Purchase) error
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new instance of PurchaseRepository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(purchase *models.Purchase) error {
	if purchase.UniqueLink == "" {
		purchase.UniqueLink = utils.NewPurchaseLink()
	}
	if err := r.db.Create(purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Link collision. Astronomically unlikely; one retry is enough.
			purchase.UniqueLink = utils.NewPurchaseLink()
			if err := r.db.Create(purchase).Error; err != nil {
				return ErrDatabaseOperation
			}
			return nil
		}
		return ErrDatabaseOperation
	}
	return nil
}
