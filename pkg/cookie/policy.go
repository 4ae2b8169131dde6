package cookie

import "net/http"

// DevelopmentDomain is the cookie domain outside production.
const DevelopmentDomain = "localhost"

// Policy holds the attributes applied to every cookie.
type Policy struct {
	Secure   bool
	Domain   string
	SameSite http.SameSite
	HTTPOnly bool
	Path     string
}

// NewPolicy returns the cookie policy for the given environment.
// rootDomain is used only in production.
func NewPolicy(isProduction bool, rootDomain string) Policy {
	domain := DevelopmentDomain
	if isProduction {
		domain = rootDomain
	}
	return Policy{
		Secure:   isProduction,
		Domain:   domain,
		SameSite: http.SameSiteLaxMode,
		HTTPOnly: true,
		Path:     "/",
	}
}

func (p Policy) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     p.Path,
		Domain:   p.Domain,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
		SameSite: p.SameSite,
	}
}
