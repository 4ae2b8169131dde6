package verification

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCodeGenerator overrides how codes are generated.
func WithCodeGenerator(fn func() (string, error)) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newCode = fn
		}
	}
}

// ConfirmOption adds checks or effects to Confirm.
type ConfirmOption func(*confirmOptions)

type confirmOptions struct {
	keepVerified bool
	email        string
	userID       string
}

// KeepVerified stores the consumed session again, marked EmailVerified and
// without a code, for flows that finish in a later step with Complete.
func KeepVerified() ConfirmOption {
	return func(o *confirmOptions) { o.keepVerified = true }
}

// ExpectEmail fails the confirmation with ErrEmailMismatch unless the session
// was issued for email.
func ExpectEmail(email string) ConfirmOption {
	return func(o *confirmOptions) { o.email = email }
}

// ExpectUserID fails the confirmation with ErrUserMismatch unless the session
// was issued for userID.
func ExpectUserID(userID string) ConfirmOption {
	return func(o *confirmOptions) { o.userID = userID }
}
