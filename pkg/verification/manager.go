package verification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/pkg/code"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/secret"
	"github.com/dmitrymomot/authkit/pkg/token"
	"github.com/dmitrymomot/authkit/pkg/user"
)

// Request describes a verification to issue.
// Subject defaults to UserID, then to Email.
type Request struct {
	Subject        string
	UserID         string
	Email          string
	Provider       string
	ProviderUserID string
}

// Issued is a freshly requested verification. Token and Code are returned
// only here; the store keeps their digests.
type Issued struct {
	Session *Session
	Token   string
	Code    string
}

// Manager runs the verification lifecycle for one purpose.
type Manager struct {
	purpose Purpose
	store   Store
	hasher  *secret.Hasher
	config  Config
	logger  *slog.Logger
	now     func() time.Time
	newCode func() (string, error)
}

// New returns a Manager for purpose.
func New(purpose Purpose, store Store, hasher *secret.Hasher, opts ...Option) *Manager {
	m := &Manager{
		purpose: purpose,
		store:   store,
		hasher:  hasher,
		config:  DefaultConfig(),
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.newCode == nil {
		length := m.config.CodeLength
		m.newCode = func() (string, error) { return code.Generate(length, code.Digits) }
	}
	m.logger = m.logger.With(logger.Component("verification"), logger.Purpose(purpose.String()))
	return m
}

// Purpose returns the purpose the manager serves.
func (m *Manager) Purpose() Purpose { return m.purpose }

// Request replaces any active verification for the subject with a new one.
func (m *Manager) Request(ctx context.Context, req Request) (*Issued, error) {
	email := user.NormalizeEmail(req.Email)
	subject := req.Subject
	if subject == "" {
		subject = req.UserID
	}
	if subject == "" {
		subject = email
	}
	if subject == "" {
		return nil, ErrMissingSubject
	}

	if err := m.store.DeleteBySubject(ctx, m.purpose, subject); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}

	s, err := secret.Generate()
	if err != nil {
		return nil, err
	}
	c, err := m.newCode()
	if err != nil {
		return nil, err
	}

	now := m.now()
	v := &Session{
		ID:             token.NewID(),
		Purpose:        m.purpose,
		Subject:        subject,
		UserID:         req.UserID,
		Email:          email,
		Provider:       req.Provider,
		ProviderUserID: req.ProviderUserID,
		CodeHash:       m.hasher.Hash(c),
		SecretHash:     m.hasher.Hash(s),
		ExpiresAt:      now.Add(m.config.TTL),
		CreatedAt:      now,
	}
	if err := m.store.Save(ctx, v); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}

	m.logger.DebugContext(ctx, "verification requested",
		logger.SessionID(v.ID),
		logger.UserID(v.UserID),
	)
	return &Issued{Session: v, Token: token.Format(v.ID, s), Code: c}, nil
}

// Validate checks tok without consuming the session.
// A wrong secret leaves the session in place.
func (m *Manager) Validate(ctx context.Context, tok string) (*Session, error) {
	id, s, err := token.Parse(tok)
	if err != nil {
		return nil, err
	}

	v, err := m.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.hasher.Verify(s, v.SecretHash) {
		return nil, ErrSecretMismatch
	}
	if v.IsExpired(m.now()) {
		if err := m.store.DeleteByID(ctx, m.purpose, v.ID); err != nil {
			return nil, errors.Join(ErrStorage, err)
		}
		return nil, ErrExpired
	}
	return v, nil
}

// Confirm checks code against session id. The session is deleted whatever
// the outcome; each code gets a single attempt.
func (m *Manager) Confirm(ctx context.Context, id, code string, opts ...ConfirmOption) (*Session, error) {
	var o confirmOptions
	for _, opt := range opts {
		opt(&o)
	}

	v, err := m.consume(ctx, id)
	if err != nil {
		return nil, err
	}

	if !m.hasher.Verify(code, v.CodeHash) {
		m.logger.InfoContext(ctx, "verification code rejected", logger.SessionID(v.ID))
		return nil, ErrInvalidCode
	}
	if v.IsExpired(m.now()) {
		return nil, ErrExpired
	}
	if o.email != "" && !secret.Equal(user.NormalizeEmail(o.email), v.Email) {
		return nil, ErrEmailMismatch
	}
	if o.userID != "" && o.userID != v.UserID {
		return nil, ErrUserMismatch
	}

	if o.keepVerified {
		v.EmailVerified = true
		v.CodeHash = ""
		if err := m.store.Save(ctx, v); err != nil {
			return nil, errors.Join(ErrStorage, err)
		}
	}
	return v, nil
}

// ConfirmToken validates tok and confirms code for the session it names.
func (m *Manager) ConfirmToken(ctx context.Context, tok, code string, opts ...ConfirmOption) (*Session, error) {
	v, err := m.Validate(ctx, tok)
	if err != nil {
		return nil, err
	}
	return m.Confirm(ctx, v.ID, code, opts...)
}

// Complete validates tok, requires that its code was confirmed with
// KeepVerified, and consumes the session.
func (m *Manager) Complete(ctx context.Context, tok string) (*Session, error) {
	v, err := m.Validate(ctx, tok)
	if err != nil {
		return nil, err
	}
	if !v.EmailVerified {
		return nil, ErrNotVerified
	}
	if _, err := m.consume(ctx, v.ID); err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate deletes session id.
func (m *Manager) Invalidate(ctx context.Context, id string) error {
	if err := m.store.DeleteByID(ctx, m.purpose, id); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// InvalidateSubject deletes the active session of subject, if any.
func (m *Manager) InvalidateSubject(ctx context.Context, subject string) error {
	if err := m.store.DeleteBySubject(ctx, m.purpose, subject); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// SweepExpired deletes expired sessions of every purpose in the store.
func (m *Manager) SweepExpired(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, errors.Join(ErrStorage, err)
	}
	return n, nil
}

func (m *Manager) find(ctx context.Context, id string) (*Session, error) {
	v, err := m.store.FindByID(ctx, m.purpose, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStorage, err)
	}
	return v, nil
}

// consume fetches and deletes session id, atomically when the store allows.
func (m *Manager) consume(ctx context.Context, id string) (*Session, error) {
	if c, ok := m.store.(Consumer); ok {
		v, err := c.Consume(ctx, m.purpose, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, errors.Join(ErrStorage, err)
		}
		return v, nil
	}

	v, err := m.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.store.DeleteByID(ctx, m.purpose, id); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}
	return v, nil
}
