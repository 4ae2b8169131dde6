package token

import "errors"

// ErrMalformedToken is returned when a token is not "<id>.<secret>".
var ErrMalformedToken = errors.New("token.malformed")
