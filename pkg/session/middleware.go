package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Middleware validates the request token and stores the session and its
// owner in the request context. Requests without a valid session pass
// through unauthenticated. Refreshed sessions get their token re-issued with
// the new expiry; rejected tokens are cleared from the client.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, err := m.transport.GetToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		sess, u, err := m.Validate(ctx, tok)
		if err != nil {
			if errors.Is(err, ErrStorage) {
				m.logger.ErrorContext(ctx, "session validation failed", logger.Error(err))
			} else {
				_ = m.transport.ClearToken(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		if sess.Refreshed {
			if err := m.transport.SetToken(w, tok, sess.ExpiresAt); err != nil {
				m.logger.ErrorContext(ctx, "failed to re-issue session token",
					logger.SessionID(sess.ID),
					logger.Error(err),
				)
			}
		}

		ctx = WithSession(ctx, sess)
		if u != nil {
			ctx = WithUser(ctx, u)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that carry no valid session with 401.
// Place it after Middleware.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
