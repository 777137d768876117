package utils

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

const purchaseLinkLength = 20

// NewPurchaseLink returns an opaque, collision-resistant token used to
// identify a purchase externally. 100 bits of entropy across the
// ledger, encoded to a 20-character alphanumeric string.
func NewPurchaseLink() string {
	b := make([]byte, 13)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read random bytes: " + err.Error())
	}
	s := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b))
	return s[:purchaseLinkLength]
}
