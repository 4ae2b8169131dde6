package session

import "time"

// Config holds session lifetimes and transport names.
type Config struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	HeaderName    string        `env:"SESSION_HEADER_NAME" envDefault:"Authorization"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	RefreshWindow time.Duration `env:"SESSION_REFRESH_WINDOW" envDefault:"360h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1h"`
}

// DefaultConfig returns a 30-day session with a 15-day refresh window.
func DefaultConfig() Config {
	return Config{
		CookieName:    "session",
		HeaderName:    "Authorization",
		TTL:           30 * 24 * time.Hour,
		RefreshWindow: 15 * 24 * time.Hour,
		SweepInterval: time.Hour,
	}
}
