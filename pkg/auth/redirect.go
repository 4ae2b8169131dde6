package auth

import (
	"net/url"
	"strings"
)

// ResolveRedirect checks that raw points back into the application rooted at
// base and returns the absolute target. Relative paths are resolved against
// base. Absolute URLs must share the scheme and host of base; for custom
// schemes without a host (mobile deep links such as "app://") only the scheme
// is compared. An empty raw resolves to base itself.
func ResolveRedirect(base *url.URL, raw string) (*url.URL, error) {
	if base == nil || base.Scheme == "" {
		return nil, ErrInvalidRedirectURI
	}
	if raw == "" {
		u := *base
		return &u, nil
	}
	if strings.ContainsAny(raw, "\\\r\n") {
		return nil, ErrInvalidRedirectURI
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrInvalidRedirectURI
	}

	if !u.IsAbs() {
		// Protocol-relative and bare relative paths could leave the origin.
		if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
			return nil, ErrInvalidRedirectURI
		}
		return base.ResolveReference(u), nil
	}

	if !strings.EqualFold(u.Scheme, base.Scheme) {
		return nil, ErrInvalidRedirectURI
	}
	if base.Host != "" && !strings.EqualFold(u.Host, base.Host) {
		return nil, ErrInvalidRedirectURI
	}
	return u, nil
}
