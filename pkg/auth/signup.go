package auth

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/user"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// SignupRequest starts a signup for email and mails the confirmation code.
func (s *Service) SignupRequest(ctx context.Context, email string) (*Challenge, error) {
	email = user.NormalizeEmail(email)
	if err := s.emailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}
	return s.challenge(ctx, verification.PurposeSignup, verification.Request{Email: email})
}

// SignupVerifyEmail confirms the signup code.
func (s *Service) SignupVerifyEmail(ctx context.Context, tok, code string) (*verification.Session, error) {
	return s.flow(verification.PurposeSignup).ConfirmToken(ctx, tok, code, verification.KeepVerified())
}

// SignupComplete creates the account for a confirmed signup and starts a
// session.
func (s *Service) SignupComplete(ctx context.Context, tok, name, pw string) (*Result, error) {
	if pw == "" {
		return nil, ErrPasswordRequired
	}

	v, err := s.flow(verification.PurposeSignup).Complete(ctx, tok)
	if err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(pw)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := &user.User{
		ID:            s.newUserID(),
		Email:         v.Email,
		Name:          name,
		EmailVerified: true,
		PasswordHash:  hash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user signed up", logger.UserID(u.ID))
	return s.startSession(ctx, u)
}
