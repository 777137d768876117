// Package advisory orchestrates the signup, client management and
// role-assignment flows. It composes the identity store, the OTP
// verifier and the credential issuer, and enforces advisor scoping.
package advisory

import (
	"errors"
	"log"

	domain "zfunds/internal/errors"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
	"zfunds/internal/services/auth"
	"zfunds/internal/services/otp"
)

type Service interface {
	// AdvisorSignup verifies the OTP for an existing identity and
	// promotes it to advisor, returning a session credential.
	AdvisorSignup(mobileNumber, code string) (*models.Identity, auth.TokenPair, error)

	// UserSignup verifies the OTP for an existing identity and
	// confirms it as a user. No credential is issued.
	UserSignup(name, mobileNumber, code string) (*models.Identity, error)

	// AddClient creates a new user identity linked to the advisor.
	AddClient(advisorID uint, name, mobileNumber string) (*models.Identity, error)

	// ListClients returns all user identities linked to the advisor.
	ListClients(advisorID uint) ([]models.Identity, error)

	// RequestOTP derives the current code for an identity, for
	// delivery out of band.
	RequestOTP(mobileNumber string) (string, error)
}

type service struct {
	identityRepo repositories.IdentityRepository
	otpService   otp.Service
	authService  auth.Service
}

func NewService(identityRepo repositories.IdentityRepository, otpService otp.Service, authService auth.Service) Service {
	return &service{
		identityRepo: identityRepo,
		otpService:   otpService,
		authService:  authService,
	}
}

func (s *service) AdvisorSignup(mobileNumber, code string) (*models.Identity, auth.TokenPair, error) {
	identity, err := s.identityRepo.GetByMobile(mobileNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrIdentityNotFound) {
			return nil, auth.TokenPair{}, domain.ErrIdentityNotFound
		}
		return nil, auth.TokenPair{}, err
	}

	if !s.otpService.Verify(identity, code) {
		return nil, auth.TokenPair{}, domain.ErrInvalidOTP
	}

	if identity.Role != models.RoleAdvisor {
		identity.Role = models.RoleAdvisor
		if err := s.identityRepo.Update(identity); err != nil {
			return nil, auth.TokenPair{}, err
		}
	}

	tokens, err := s.authService.IssueTokens(identity)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}

	return identity, tokens, nil
}

func (s *service) UserSignup(name, mobileNumber, code string) (*models.Identity, error) {
	identity, err := s.identityRepo.GetByMobile(mobileNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrIdentityNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}

	if !s.otpService.Verify(identity, code) {
		return nil, domain.ErrInvalidOTP
	}

	identity.Name = name
	// A role, once set, is never silently reverted: a user signup
	// against an advisor identity updates the name but keeps the role.
	if identity.Role != models.RoleAdvisor {
		identity.Role = models.RoleUser
	}
	if err := s.identityRepo.Update(identity); err != nil {
		return nil, err
	}

	return identity, nil
}

func (s *service) AddClient(advisorID uint, name, mobileNumber string) (*models.Identity, error) {
	secret, err := s.otpService.NewSecret(mobileNumber)
	if err != nil {
		log.Printf("Failed to provision OTP secret for %s: %v", mobileNumber, err)
		return nil, err
	}

	client := &models.Identity{
		MobileNumber: mobileNumber,
		Name:         name,
		OTPSecret:    secret,
		Role:         models.RoleUser,
		IsActive:     true,
		AdvisorID:    &advisorID,
	}

	if err := s.identityRepo.Create(client); err != nil {
		if errors.Is(err, repositories.ErrMobileTaken) {
			return nil, domain.ErrMobileTaken
		}
		return nil, err
	}

	return client, nil
}

func (s *service) ListClients(advisorID uint) ([]models.Identity, error) {
	if _, err := s.identityRepo.GetAdvisorByID(advisorID); err != nil {
		if errors.Is(err, repositories.ErrIdentityNotFound) {
			return nil, domain.ErrAdvisorNotFound
		}
		return nil, err
	}

	return s.identityRepo.ListClients(advisorID)
}

func (s *service) RequestOTP(mobileNumber string) (string, error) {
	identity, err := s.identityRepo.GetByMobile(mobileNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrIdentityNotFound) {
			return "", domain.ErrIdentityNotFound
		}
		return "", err
	}

	return s.otpService.Issue(identity)
}
