package session

import (
	"net/http"
	"time"
)

// Transport moves session tokens between client and server.
// GetToken returns ErrSessionNotFound when the request carries no token.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, expiresAt time.Time) error
	ClearToken(w http.ResponseWriter) error
}
