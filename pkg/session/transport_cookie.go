package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/pkg/cookie"
)

// CookieTransport carries the token in a cookie written by a cookie.Manager,
// so the cookie policy of the environment applies.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
}

// NewCookieTransport returns a transport using the cookie called name.
func NewCookieTransport(cookies *cookie.Manager, name string) *CookieTransport {
	return &CookieTransport{cookies: cookies, name: name}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	v, err := t.cookies.Get(r, t.name)
	if err != nil || v == "" {
		return "", ErrSessionNotFound
	}
	return v, nil
}

// SetToken writes the cookie with Expires and Max-Age matching expiresAt.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, expiresAt time.Time) error {
	t.cookies.SetUntil(w, t.name, token, expiresAt)
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name)
	return nil
}
