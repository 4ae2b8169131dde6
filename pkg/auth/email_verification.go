package auth

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/user"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// EmailVerificationRequest mails a code proving control of email. An empty
// email means the current account address. A different address starts an
// email change.
func (s *Service) EmailVerificationRequest(ctx context.Context, userID, email string) (*Challenge, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	email = user.NormalizeEmail(email)
	if email == "" {
		email = u.Email
	}
	if email == u.Email {
		if u.EmailVerified {
			return nil, ErrEmailAlreadyVerified
		}
	} else if err := s.emailAvailable(ctx, email, u.ID); err != nil {
		return nil, err
	}

	return s.challenge(ctx, verification.PurposeEmailVerification, verification.Request{
		UserID: u.ID,
		Email:  email,
	})
}

// EmailVerificationConfirm confirms the code of userID, marks the address
// verified (switching the account to it on an email change), revokes every
// session of the account and starts a new one.
func (s *Service) EmailVerificationConfirm(ctx context.Context, userID, tok, code string) (*Result, error) {
	v, err := s.flow(verification.PurposeEmailVerification).
		ConfirmToken(ctx, tok, code, verification.ExpectUserID(userID))
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v.Email != u.Email {
		if err := s.emailAvailable(ctx, v.Email, u.ID); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "email changed", logger.UserID(u.ID))
		u.Email = v.Email
	}
	u.EmailVerified = true
	u.UpdatedAt = s.now()
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return s.restartSessions(ctx, u)
}
