package auth

import (
	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// Config is the environment-driven configuration of the kit.
type Config struct {
	Environment  environment.Environment `env:"APP_ENV" envDefault:"development"`
	CookieDomain string                  `env:"AUTH_COOKIE_DOMAIN"`

	PasswordPepper string `env:"AUTH_PASSWORD_PEPPER"`
	SessionPepper  string `env:"AUTH_SESSION_PEPPER"`
	OAuthStateKey  string `env:"AUTH_OAUTH_STATE_KEY"`

	Session      session.Config
	Verification verification.Config
	Password     password.Config
}

// Validate requires the three secrets to be set and pairwise distinct.
func (c Config) Validate() error {
	if c.PasswordPepper == "" || c.SessionPepper == "" || c.OAuthStateKey == "" {
		return ErrMissingSecret
	}
	if c.PasswordPepper == c.SessionPepper ||
		c.PasswordPepper == c.OAuthStateKey ||
		c.SessionPepper == c.OAuthStateKey {
		return ErrSharedSecret
	}
	return nil
}

// CookiePolicy derives the session cookie policy from the environment.
func (c Config) CookiePolicy() cookie.Policy {
	return cookie.NewPolicy(c.Environment.IsProduction(), c.CookieDomain)
}

// PasswordConfig returns the Argon2id parameters with the password pepper applied.
func (c Config) PasswordConfig() password.Config {
	p := c.Password
	p.Pepper = c.PasswordPepper
	return p
}
