// Package code generates short one-time verification codes that users type
// back into the application, such as the 8-digit codes sent by email.
package code

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// DefaultLength is the length of codes produced by Numeric.
	DefaultLength = 8

	// Digits is the charset of numeric codes.
	Digits = "0123456789"
)

var (
	ErrInvalidLength     = errors.New("code.invalid_length")
	ErrInvalidCharset    = errors.New("code.invalid_charset")
	ErrRandomUnavailable = errors.New("code.random_unavailable")
)

// Generate returns length characters drawn uniformly from charset.
func Generate(length int, charset string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	alphabet := []rune(charset)
	if len(alphabet) < 2 {
		return "", ErrInvalidCharset
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Join(ErrRandomUnavailable, err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// Numeric returns a DefaultLength-digit code.
func Numeric() (string, error) {
	return Generate(DefaultLength, Digits)
}
