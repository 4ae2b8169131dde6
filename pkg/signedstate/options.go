package signedstate

import "log/slog"

// Option configures a Signer.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	newNonce func() string
}

// WithLogger sets the logger used to report undecodable states.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNonceFunc overrides the nonce source.
func WithNonceFunc(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newNonce = fn
		}
	}
}
