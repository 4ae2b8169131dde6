package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/hex"
	"errors"
)

const (
	// Size is the number of random bytes in a generated secret.
	Size = 20

	// Length is the number of characters in an encoded secret.
	Length = 32
)

// encoding is the RFC 4648 base32 alphabet, lowercased, without padding.
var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Generate returns a new random secret of [Length] lowercase base32 characters.
func Generate() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrRandomUnavailable, err)
	}
	return encoding.EncodeToString(b), nil
}

// MustGenerate is like Generate but panics when the random source fails.
func MustGenerate() string {
	s, err := Generate()
	if err != nil {
		panic(err)
	}
	return s
}

// Hasher derives peppered SHA-256 digests of secrets.
// The zero value hashes without a pepper.
type Hasher struct {
	pepper []byte
}

// NewHasher returns a Hasher that appends pepper to every secret before hashing.
func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: []byte(pepper)}
}

// Hash returns the hex-encoded SHA-256 digest of secret and the pepper.
func (h *Hasher) Hash(secret string) string {
	sum := sha256.New()
	sum.Write([]byte(secret))
	sum.Write(h.pepper)
	return hex.EncodeToString(sum.Sum(nil))
}

// Verify reports whether secret hashes to the stored digest.
func (h *Hasher) Verify(secret, hash string) bool {
	return Equal(h.Hash(secret), hash)
}

// Equal compares a and b in time that depends only on their length.
// Strings of different length are never equal.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
