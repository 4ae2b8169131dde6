package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/secret"
	"github.com/dmitrymomot/authkit/pkg/token"
	"github.com/dmitrymomot/authkit/pkg/user"
)

// Manager creates, validates and revokes sessions.
type Manager struct {
	store     Store
	hasher    *secret.Hasher
	users     user.Finder
	transport Transport
	config    Config
	logger    *slog.Logger
	now       func() time.Time
}

// New returns a Manager persisting sessions in store and hashing secrets
// with hasher.
func New(store Store, hasher *secret.Hasher, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		hasher: hasher,
		config: DefaultConfig(),
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.transport == nil {
		m.transport = NewHeaderTransport(m.config.HeaderName)
	}
	m.logger = m.logger.With(logger.Component("session"))
	return m
}

// Config returns the manager configuration.
func (m *Manager) Config() Config { return m.config }

// Create starts a session for userID and returns it with its token.
// The token is not recoverable later.
func (m *Manager) Create(ctx context.Context, userID string) (*Session, string, error) {
	s, err := secret.Generate()
	if err != nil {
		return nil, "", err
	}

	now := m.now()
	sess := &Session{
		ID:         token.NewID(),
		UserID:     userID,
		SecretHash: m.hasher.Hash(s),
		ExpiresAt:  now.Add(m.config.TTL),
		CreatedAt:  now,
	}
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, "", errors.Join(ErrStorage, err)
	}

	m.logger.DebugContext(ctx, "session created",
		logger.SessionID(sess.ID),
		logger.UserID(userID),
	)
	return sess, token.Format(sess.ID, s), nil
}

// Validate checks tok and returns the session and, when a user finder is
// configured, its owner. Sessions inside the refresh window get a new expiry
// of now + TTL and are marked Refreshed.
func (m *Manager) Validate(ctx context.Context, tok string) (*Session, *user.User, error) {
	id, s, err := token.Parse(tok)
	if err != nil {
		return nil, nil, err
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, errors.Join(ErrStorage, err)
	}

	if !m.hasher.Verify(s, sess.SecretHash) {
		return nil, nil, ErrSecretMismatch
	}

	now := m.now()
	if sess.IsExpired(now) {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			m.logger.ErrorContext(ctx, "failed to delete expired session",
				logger.SessionID(sess.ID),
				logger.Error(err),
			)
		}
		return nil, nil, ErrSessionExpired
	}

	if sess.InRefreshWindow(now, m.config.RefreshWindow) {
		expiresAt := now.Add(m.config.TTL)
		if err := m.store.UpdateExpiry(ctx, sess.ID, expiresAt); err != nil {
			// the session is still valid until its current expiry
			m.logger.ErrorContext(ctx, "failed to refresh session",
				logger.SessionID(sess.ID),
				logger.Error(err),
			)
		} else {
			sess.ExpiresAt = expiresAt
			sess.Refreshed = true
		}
	}

	if m.users == nil {
		return sess, nil, nil
	}

	u, err := m.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			if err := m.store.Delete(ctx, sess.ID); err != nil {
				m.logger.ErrorContext(ctx, "failed to delete orphaned session",
					logger.SessionID(sess.ID),
					logger.UserID(sess.UserID),
					logger.Error(err),
				)
			}
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, errors.Join(ErrStorage, err)
	}
	return sess, u, nil
}

// Invalidate deletes a session. Unknown ids are not an error.
func (m *Manager) Invalidate(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// InvalidateAllForUser deletes every session of userID.
func (m *Manager) InvalidateAllForUser(ctx context.Context, userID string) error {
	if err := m.store.DeleteByUserID(ctx, userID); err != nil {
		return errors.Join(ErrStorage, err)
	}
	m.logger.InfoContext(ctx, "all user sessions invalidated", logger.UserID(userID))
	return nil
}

// SweepExpired deletes every expired session and returns how many were removed.
func (m *Manager) SweepExpired(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, errors.Join(ErrStorage, err)
	}
	return n, nil
}

// Issue sends tok to the client through the configured transport.
func (m *Manager) Issue(w http.ResponseWriter, sess *Session, tok string) error {
	return m.transport.SetToken(w, tok, sess.ExpiresAt)
}

// Clear removes the token from the client.
func (m *Manager) Clear(w http.ResponseWriter) error {
	return m.transport.ClearToken(w)
}

// Token extracts the raw token from the request.
func (m *Manager) Token(r *http.Request) (string, error) {
	return m.transport.GetToken(r)
}
