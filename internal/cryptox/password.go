// Package cryptox implements credential hashing for stored records.
// Passwords are never persisted in clear text: each record carries an
// argon2id digest together with its random salt, hex-encoded as
// "salt$digest" in the record's password field.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/greengrove/backoffice/internal/common"
)

const saltSize = 16

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
}

// HashPassword derives an argon2id digest of password under a fresh random
// salt and returns the encoded "salt$digest" form.
func HashPassword(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	digest := deriveKey(password, salt)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(digest)
}

// VerifyPassword reports whether candidate matches the encoded digest.
// Comparison is constant-time. A malformed encoded value never matches.
func VerifyPassword(encoded, candidate string) bool {
	salt, digest, ok := decode(encoded)
	if !ok {
		return false
	}
	candidateDigest := deriveKey(candidate, salt)
	return subtle.ConstantTimeCompare(digest, candidateDigest) == 1
}

func decode(encoded string) (salt, digest []byte, ok bool) {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}
	digest, err = hex.DecodeString(parts[1])
	if err != nil || len(digest) == 0 {
		return nil, nil, false
	}
	return salt, digest, true
}
