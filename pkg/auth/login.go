package auth

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/user"
)

// Login checks email and password and starts a session. Unknown accounts,
// accounts without a password and wrong passwords all yield
// ErrInvalidCredentials. A hash made with outdated parameters is replaced.
func (s *Service) Login(ctx context.Context, email, pw string) (*Result, error) {
	u, err := s.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	ok, err := s.passwords.Verify(pw, u.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if s.passwords.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u, pw)
	}

	return s.startSession(ctx, u)
}

// rehash stores a new hash of pw for u. Failures are logged; the login
// still succeeds.
func (s *Service) rehash(ctx context.Context, u *user.User, pw string) {
	hash, err := s.passwords.Hash(pw)
	if err == nil {
		u.PasswordHash = hash
		u.UpdatedAt = s.now()
		err = s.users.Update(ctx, u)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to rehash password",
			logger.UserID(u.ID),
			logger.Error(err),
		)
	}
}

// Logout revokes session sessionID.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

// UpdatePassword replaces the password of userID after checking current,
// revokes every session of the user and starts a new one. Accounts without
// a password may set one without a current password.
func (s *Service) UpdatePassword(ctx context.Context, userID, current, next string) (*Result, error) {
	if next == "" {
		return nil, ErrPasswordRequired
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.HasPassword() {
		ok, err := s.passwords.Verify(current, u.PasswordHash)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidCredentials
		}
	}

	if err := s.setPassword(ctx, u, next); err != nil {
		return nil, err
	}
	return s.restartSessions(ctx, u)
}

func (s *Service) setPassword(ctx context.Context, u *user.User, pw string) error {
	hash, err := s.passwords.Hash(pw)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = s.now()
	return s.users.Update(ctx, u)
}
