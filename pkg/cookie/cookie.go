package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes cookies that follow a Policy.
type Manager struct {
	policy Policy
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source used to compute Max-Age.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New returns a Manager applying policy.
func New(policy Policy, opts ...Option) *Manager {
	m := &Manager{policy: policy, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Policy returns the policy the manager applies.
func (m *Manager) Policy() Policy { return m.policy }

// Set writes a session cookie that lives until the browser closes.
func (m *Manager) Set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, m.policy.cookie(name, value))
}

// SetUntil writes a cookie that expires at expiresAt.
// Max-Age and Expires describe the same instant.
func (m *Manager) SetUntil(w http.ResponseWriter, name, value string, expiresAt time.Time) {
	c := m.policy.cookie(name, value)
	c.Expires = expiresAt.UTC()
	maxAge := int(expiresAt.Sub(m.now()).Seconds())
	if maxAge <= 0 {
		// http.Cookie treats MaxAge 0 as "unset"
		maxAge = -1
	}
	c.MaxAge = maxAge
	http.SetCookie(w, c)
}

// Get returns the value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete instructs the client to drop the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.policy.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0).UTC()
	http.SetCookie(w, c)
}
