package auth

import (
	"testing"

	"zfunds/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockIdentityRepo struct {
	mock.Mock
}

func newAdvisor(id uint, version int) *models.Identity {
	identity := &models.Identity{
		MobileNumber: "9876543210",
		Role:         models.RoleAdvisor,
		TokenVersion: version,
	}
	identity.ID = id
	return identity
}

func TestIssueAndRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := new(MockIdentityRepo)
	identity := newAdvisor(7, 1)
	repo.On("GetByID", uint(7)).Return(identity, nil)

	s := NewService(repo)

	tokens, err := s.IssueTokens(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)

	rotated, err := s.RefreshTokens(tokens.Refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.Access)
	assert.NotEmpty(t, rotated.Refresh)
}

func TestRefreshAfterLogoutIsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := new(MockIdentityRepo)
	s := NewService(repo)

	tokens, err := s.IssueTokens(newAdvisor(7, 1))
	assert.NoError(t, err)

	// Logout bumps the stored version; the old refresh token carries
	// the stale one.
	repo.On("GetByID", uint(7)).Return(newAdvisor(7, 2), nil)

	_, err = s.RefreshTokens(tokens.Refresh)
	assert.Error(t, err)
}

func TestRefreshWithGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := NewService(new(MockIdentityRepo))
	_, err := s.RefreshTokens("not-a-token")
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	repo := new(MockIdentityRepo)
	repo.On("IncrementTokenVersion", uint(7)).Return(nil)

	s := NewService(repo)
	assert.NoError(t, s.Logout(7))
	repo.AssertExpectations(t)
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
