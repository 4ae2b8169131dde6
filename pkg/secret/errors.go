package secret

import "errors"

// ErrRandomUnavailable is returned when the system random source cannot be read.
var ErrRandomUnavailable = errors.New("secret.random_unavailable")
