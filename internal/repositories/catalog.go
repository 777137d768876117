package repositories

import (
	"errors"

	"zfunds/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateCategory = errors.New("category created concurrently")
)

// CatalogRepository defines the interface for category and product
// database operations.
type CatalogRepository interface {
	// CreateProductWithCategory get-or-creates the category by name
	// and creates the product, atomically
	CreateProductWithCategory(name, description, categoryName string) (*models.Product, error)

	// GetProductByID retrieves a product by its ID
	GetProductByID(id uint) (*models.Product, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// CreateProductWithCategory runs both writes in one transaction so a
// failure between them cannot leave an orphan category. When two
// requests race on a new category name the unique index makes one of
// them fail at commit; that caller sees ErrDuplicateCategory and may
// retry.
func (r *catalogRepository) CreateProductWithCategory(name, description, categoryName string) (*models.Product, error) {
	var product models.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where(models.Category{Name: categoryName}).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}

		product = models.Product{
			Name:        name,
			Description: description,
			CategoryID:  category.ID,
			Category:    category,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCategory
		}
		return nil, ErrDatabaseOperation
	}

	return &product, nil
}

func (r *catalogRepository) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &product, nil
}
