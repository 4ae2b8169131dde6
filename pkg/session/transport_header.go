package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport carries the token in a request header, for mobile and API
// clients. Responses echo the token and its expiry so clients can store it.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// HeaderOption configures a HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets the scheme prefix, "Bearer " by default.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) { t.prefix = prefix }
}

// NewHeaderTransport returns a transport reading headerName.
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	if headerName == "" {
		headerName = "Authorization"
	}
	t := &HeaderTransport{headerName: headerName, prefix: "Bearer "}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(t.headerName))
	if t.prefix != "" {
		v, ok := strings.CutPrefix(value, t.prefix)
		if !ok {
			return "", ErrSessionNotFound
		}
		value = strings.TrimSpace(v)
	}
	if value == "" {
		return "", ErrSessionNotFound
	}
	return value, nil
}

func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, expiresAt time.Time) error {
	w.Header().Set(t.headerName, t.prefix+token)
	w.Header().Set(t.headerName+"-Expires", expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
