package repositories

import (
	"errors"

	"zfunds/internal/models"
)

var (
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrMobileTaken       = errors.New("mobile number already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// IdentityRepository defines the interface for identity-related
// database operations.
type IdentityRepository interface {
	// Create creates a new identity
	Create(identity *models.Identity) error

	// GetByID retrieves an identity by its ID
	GetByID(id uint) (*models.Identity, error)

	// GetByMobile retrieves an identity by its mobile number
	GetByMobile(mobile string) (*models.Identity, error)

	// GetAdvisorByID retrieves an identity constrained to role=advisor
	GetAdvisorByID(id uint) (*models.Identity, error)

	// GetClientOfAdvisor retrieves an identity constrained to
	// (id AND advisor_id). A miss means the client does not exist or
	// belongs to a different advisor; the two are indistinguishable
	// on purpose.
	GetClientOfAdvisor(id, advisorID uint) (*models.Identity, error)

	// ListClients retrieves all identities with advisor_id=advisorID
	// and role=user, in store order
	ListClients(advisorID uint) ([]models.Identity, error)

	// Update updates an existing identity
	Update(identity *models.Identity) error

	// IncrementTokenVersion invalidates the identity's outstanding tokens
	IncrementTokenVersion(id uint) error
}
