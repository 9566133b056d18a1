package common

import (
	"crypto/rand"
	"regexp"
	"strings"
)

// emailRx mirrors the permissive local@domain.tld check the UI applies:
// any non-space local part, any non-space domain with at least one dot.
var emailRx = regexp.MustCompile(`\S+@\S+\.\S+`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// All email comparisons in this module go through the normalized form.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system RNG fails, which is not recoverable anyway.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
