package token

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Separator splits the id from the secret.
const Separator = "."

// Format joins id and secret into an opaque token.
func Format(id, secret string) string {
	return id + Separator + secret
}

// Parse splits token into its id and secret parts.
func Parse(token string) (id, secret string, err error) {
	id, secret, ok := strings.Cut(token, Separator)
	if !ok || id == "" || secret == "" || strings.Contains(secret, Separator) {
		return "", "", ErrMalformedToken
	}
	return id, secret, nil
}

// NewID returns a new random record identifier: a lowercased ULID.
// ULIDs draw 80 bits from crypto/rand and sort by creation time.
func NewID() string {
	return strings.ToLower(ulid.Make().String())
}
