package auth

import (
	"context"

	"github.com/dmitrymomot/authkit/pkg/user"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// PasswordResetRequest mails a reset code to the account registered with
// email. Unknown addresses yield user.ErrNotFound; callers that must not
// reveal registration should answer success either way.
func (s *Service) PasswordResetRequest(ctx context.Context, email string) (*Challenge, error) {
	u, err := s.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.challenge(ctx, verification.PurposePasswordReset, verification.Request{
		UserID: u.ID,
		Email:  u.Email,
	})
}

// PasswordResetVerifyEmail confirms the reset code. The code is rejected
// with verification.ErrEmailMismatch when the account email changed since
// the request.
func (s *Service) PasswordResetVerifyEmail(ctx context.Context, tok, code string) (*verification.Session, error) {
	mgr := s.flow(verification.PurposePasswordReset)
	v, err := mgr.Validate(ctx, tok)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, v.UserID)
	if err != nil {
		return nil, err
	}
	return mgr.Confirm(ctx, v.ID, code,
		verification.KeepVerified(),
		verification.ExpectEmail(u.Email),
	)
}

// PasswordResetComplete sets a new password for a confirmed reset, revokes
// every session of the account and starts a new one.
func (s *Service) PasswordResetComplete(ctx context.Context, tok, pw string) (*Result, error) {
	if pw == "" {
		return nil, ErrPasswordRequired
	}

	v, err := s.flow(verification.PurposePasswordReset).Complete(ctx, tok)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, v.UserID)
	if err != nil {
		return nil, err
	}
	if u.Email != v.Email {
		return nil, verification.ErrEmailMismatch
	}

	if err := s.setPassword(ctx, u, pw); err != nil {
		return nil, err
	}
	return s.restartSessions(ctx, u)
}
