package repositories

import (
	"context"
	"errors"
	"log"

	"zfunds/internal/models"
	"zfunds/internal/repositories/cache"

	"gorm.io/gorm"
)

type identityRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewIdentityRepository creates a new instance of IdentityRepository
func NewIdentityRepository(db *gorm.DB, cache *cache.CacheService) IdentityRepository {
	return &identityRepository{
		db:    db,
		cache: cache,
	}
}

func (r *identityRepository) Create(identity *models.Identity) error {
	if err := r.db.Create(identity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrMobileTaken
		}
		return ErrDatabaseOperation
	}
	return nil
}

func (r *identityRepository) GetByID(id uint) (*models.Identity, error) {
	key := r.cache.GenerateKey("identity", "id", id)
	if identity, err := r.cache.GetIdentity(context.Background(), key); err == nil {
		return identity, nil
	}

	var identity models.Identity
	if err := r.db.First(&identity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheIdentity(context.Background(), &identity); err != nil {
		log.Printf("Failed to cache identity %d: %v", identity.ID, err)
	}

	return &identity, nil
}

func (r *identityRepository) GetByMobile(mobile string) (*models.Identity, error) {
	key := r.cache.GenerateKey("identity", "mobile", mobile)
	if identity, err := r.cache.GetIdentity(context.Background(), key); err == nil {
		return identity, nil
	}

	var identity models.Identity
	if err := r.db.Where("mobile_number = ?", mobile).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheIdentity(context.Background(), &identity); err != nil {
		log.Printf("Failed to cache identity %d: %v", identity.ID, err)
	}

	return &identity, nil
}

func (r *identityRepository) GetAdvisorByID(id uint) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.Where("id = ? AND role = ?", id, models.RoleAdvisor).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &identity, nil
}

func (r *identityRepository) GetClientOfAdvisor(id, advisorID uint) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.Where("id = ? AND advisor_id = ?", id, advisorID).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &identity, nil
}

func (r *identityRepository) ListClients(advisorID uint) ([]models.Identity, error) {
	var clients []models.Identity
	err := r.db.Where("advisor_id = ? AND role = ?", advisorID, models.RoleUser).Find(&clients).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return clients, nil
}

func (r *identityRepository) Update(identity *models.Identity) error {
	if err := r.db.Save(identity).Error; err != nil {
		return ErrDatabaseOperation
	}

	if err := r.cache.InvalidateIdentity(context.Background(), identity); err != nil {
		log.Printf("Warning: Failed to invalidate identity cache: %v", err)
	}

	return nil
}

func (r *identityRepository) IncrementTokenVersion(id uint) error {
	identity, err := r.GetByID(id)
	if err != nil {
		return err
	}

	err = r.db.Model(&models.Identity{}).Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error
	if err != nil {
		return ErrDatabaseOperation
	}

	if err := r.cache.InvalidateIdentity(context.Background(), identity); err != nil {
		log.Printf("Warning: Failed to invalidate identity cache: %v", err)
	}

	return nil
}
