package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/secret"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/user"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// Deps are the collaborators of a Service.
type Deps struct {
	Users         user.Store
	Sessions      *session.Manager
	Verifications map[verification.Purpose]*verification.Manager
	Passwords     *password.Hasher
	Mailer        CodeSender
	Logger        *slog.Logger
}

// Service runs the account workflows.
type Service struct {
	users         user.Store
	sessions      *session.Manager
	verifications map[verification.Purpose]*verification.Manager
	passwords     *password.Hasher
	mailer        CodeSender
	logger        *slog.Logger
	now           func() time.Time
	newUserID     func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for user timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithUserIDGenerator overrides how new user ids are generated.
func WithUserIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newUserID = fn
		}
	}
}

// workflows lists the verification purposes a Service drives.
var workflows = []verification.Purpose{
	verification.PurposeSignup,
	verification.PurposePasswordReset,
	verification.PurposeEmailVerification,
	verification.PurposeAccountAssociation,
}

// New validates deps and returns a Service.
func New(deps Deps, opts ...Option) (*Service, error) {
	if deps.Users == nil || deps.Sessions == nil || deps.Passwords == nil || deps.Mailer == nil {
		return nil, ErrMissingDependency
	}
	for _, p := range workflows {
		if deps.Verifications[p] == nil {
			return nil, fmt.Errorf("%w: verification manager for %s", ErrMissingDependency, p)
		}
	}

	s := &Service{
		users:         deps.Users,
		sessions:      deps.Sessions,
		verifications: deps.Verifications,
		passwords:     deps.Passwords,
		mailer:        deps.Mailer,
		logger:        deps.Logger,
		now:           time.Now,
		newUserID:     uuid.NewString,
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("auth"))
	return s, nil
}

// NewVerifications returns one verification manager per purpose, all sharing
// store and hasher.
func NewVerifications(store verification.Store, hasher *secret.Hasher, opts ...verification.Option) map[verification.Purpose]*verification.Manager {
	purposes := append(slices.Clone(workflows), verification.PurposeProviderLink)
	m := make(map[verification.Purpose]*verification.Manager, len(purposes))
	for _, p := range purposes {
		m[p] = verification.New(p, store, hasher, opts...)
	}
	return m
}

// Challenge is a pending verification. The code travels by email; Token
// identifies the verification in the following steps.
type Challenge struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// Result is an authenticated user with a freshly issued session.
type Result struct {
	User    *user.User
	Session *session.Session
	Token   string
}

func (s *Service) flow(p verification.Purpose) *verification.Manager {
	return s.verifications[p]
}

// challenge issues a verification for req and mails its code.
func (s *Service) challenge(ctx context.Context, p verification.Purpose, req verification.Request) (*Challenge, error) {
	mgr := s.flow(p)
	issued, err := mgr.Request(ctx, req)
	if err != nil {
		return nil, err
	}

	msg := CodeMessage{
		Purpose:   p,
		Email:     issued.Session.Email,
		Code:      issued.Code,
		ExpiresAt: issued.Session.ExpiresAt,
	}
	if err := s.mailer.SendCode(ctx, msg); err != nil {
		if ierr := mgr.Invalidate(ctx, issued.Session.ID); ierr != nil {
			s.logger.ErrorContext(ctx, "failed to invalidate undelivered verification",
				logger.Purpose(p.String()),
				logger.Error(ierr),
			)
		}
		return nil, errors.Join(ErrDelivery, err)
	}

	return &Challenge{
		Token:     issued.Token,
		Email:     issued.Session.Email,
		ExpiresAt: issued.Session.ExpiresAt,
	}, nil
}

// startSession creates a session for u.
func (s *Service) startSession(ctx context.Context, u *user.User) (*Result, error) {
	sess, tok, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &Result{User: u, Session: sess, Token: tok}, nil
}

// restartSessions revokes every session of u and starts a new one.
func (s *Service) restartSessions(ctx context.Context, u *user.User) (*Result, error) {
	if err := s.sessions.InvalidateAllForUser(ctx, u.ID); err != nil {
		return nil, err
	}
	return s.startSession(ctx, u)
}

// emailAvailable returns ErrAlreadyRegistered when email belongs to an
// account other than exceptID.
func (s *Service) emailAvailable(ctx context.Context, email, exceptID string) error {
	u, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil
	case err != nil:
		return err
	case u.ID != exceptID:
		return ErrAlreadyRegistered
	default:
		return nil
	}
}
