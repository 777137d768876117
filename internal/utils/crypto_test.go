package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPurchaseLink(t *testing.T) {
	link := NewPurchaseLink()
	assert.Len(t, link, purchaseLinkLength)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		l := NewPurchaseLink()
		assert.False(t, seen[l], "purchase link collided: %s", l)
		seen[l] = true
	}
}
