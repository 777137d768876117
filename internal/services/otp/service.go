// Package otp implements time-based one-time code issuance and
// verification against a per-identity secret.
package otp

import (
	"time"

	"zfunds/internal/models"

	"github.com/pquerna/otp/totp"
)

const issuer = "zfunds"

// Service issues and verifies time-stepped codes. Verification is a
// stateless check; a false result is an outcome, not an error.
type Service interface {
	// NewSecret provisions a TOTP secret for an identity. The secret
	// is generated server-side and is never derived from the mobile
	// number or any other public identifier.
	NewSecret(mobileNumber string) (string, error)

	// Issue derives the current code from the identity's secret.
	Issue(identity *models.Identity) (string, error)

	// Verify checks a submitted code within the step tolerance.
	Verify(identity *models.Identity, submitted string) bool
}

type service struct{}

// NewService creates the TOTP service.
func NewService() Service {
	return &service{}
}

func (s *service) NewSecret(mobileNumber string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: mobileNumber,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

func (s *service) Issue(identity *models.Identity) (string, error) {
	return totp.GenerateCode(identity.OTPSecret, time.Now())
}

func (s *service) Verify(identity *models.Identity, submitted string) bool {
	if identity.OTPSecret == "" || submitted == "" {
		return false
	}
	return totp.Validate(submitted, identity.OTPSecret)
}
