// Package auth issues and rotates JWT session credentials for
// identities.
package auth

import (
	"errors"
	"log"

	"zfunds/internal/models"
	"zfunds/internal/repositories"
	"zfunds/internal/utils"
)

// TokenPair is the session credential returned on signup and refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Service interface {
	IssueTokens(identity *models.Identity) (TokenPair, error)
	RefreshTokens(refreshToken string) (TokenPair, error)
	Logout(identityID uint) error
	GetIdentityByID(id uint) (*models.Identity, error)
	GetTokenVersion(identityID uint) (int, error)
}

type service struct {
	identityRepo repositories.IdentityRepository
}

func NewService(identityRepo repositories.IdentityRepository) Service {
	return &service{
		identityRepo: identityRepo,
	}
}

func (s *service) IssueTokens(identity *models.Identity) (TokenPair, error) {
	access, refresh, err := utils.GenerateTokens(&models.IdentityClaims{
		IdentityID:   identity.ID,
		MobileNumber: identity.MobileNumber,
		Role:         identity.Role,
		Permissions:  models.GetDefaultPermissions(identity.Role),
		TokenVersion: identity.TokenVersion,
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return TokenPair{}, errors.New("error generating tokens")
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *service) RefreshTokens(refreshToken string) (TokenPair, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return TokenPair{}, errors.New("invalid refresh token")
	}

	identity, err := s.identityRepo.GetByID(claims.IdentityID)
	if err != nil {
		return TokenPair{}, errors.New("identity not found")
	}

	if identity.TokenVersion != claims.TokenVersion {
		return TokenPair{}, errors.New("token version mismatch")
	}

	return s.IssueTokens(identity)
}

func (s *service) Logout(identityID uint) error {
	return s.identityRepo.IncrementTokenVersion(identityID)
}

func (s *service) GetIdentityByID(id uint) (*models.Identity, error) {
	return s.identityRepo.GetByID(id)
}

func (s *service) GetTokenVersion(identityID uint) (int, error) {
	identity, err := s.identityRepo.GetByID(identityID)
	if err != nil {
		return 0, err
	}
	return identity.TokenVersion, nil
}
