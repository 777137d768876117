package otp

import (
	"testing"

	"zfunds/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewSecret(t *testing.T) {
	s := NewService()

	secret, err := s.NewSecret("9876543210")
	assert.NoError(t, err)
	assert.NotEmpty(t, secret)

	// Secrets must be unique per identity, not derived from the
	// mobile number.
	other, err := s.NewSecret("9876543210")
	assert.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestVerify(t *testing.T) {
	s := NewService()

	secret, err := s.NewSecret("9876543210")
	assert.NoError(t, err)

	identity := &models.Identity{MobileNumber: "9876543210", OTPSecret: secret}

	t.Run("current code is accepted", func(t *testing.T) {
		code, err := s.Issue(identity)
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		assert.True(t, s.Verify(identity, code))
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		assert.False(t, s.Verify(identity, "000000"))
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		assert.False(t, s.Verify(identity, ""))
	})

	t.Run("identity without secret is rejected", func(t *testing.T) {
		bare := &models.Identity{MobileNumber: "1112223333"}
		assert.False(t, s.Verify(bare, "123456"))
	})

	t.Run("code bound to another secret is rejected", func(t *testing.T) {
		otherSecret, err := s.NewSecret("1112223333")
		assert.NoError(t, err)
		other := &models.Identity{MobileNumber: "1112223333", OTPSecret: otherSecret}

		code, err := s.Issue(other)
		assert.NoError(t, err)
		assert.False(t, s.Verify(identity, code))
	})
}
