package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/pkg/user"
)

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithUserFinder makes Validate resolve the session owner.
func WithUserFinder(f user.Finder) Option {
	return func(m *Manager) { m.users = f }
}

// WithTransport sets how tokens travel between client and server.
func WithTransport(t Transport) Option {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
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
