package auth

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/user"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

// AccountAssociationRequest starts linking the provider identity
// (provider, providerUserID) to account userID. The code always goes to the
// account's own email, so only the owner of that mailbox can complete the link.
func (s *Service) AccountAssociationRequest(ctx context.Context, userID, provider, providerUserID string) (*Challenge, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.identityLinkable(ctx, u.ID, provider, providerUserID); err != nil {
		return nil, err
	}

	return s.challenge(ctx, verification.PurposeAccountAssociation, verification.Request{
		UserID:         u.ID,
		Email:          u.Email,
		Provider:       provider,
		ProviderUserID: providerUserID,
	})
}

// AccountAssociationConfirm confirms the code, links the identity, marks
// the account email verified and starts a session for the account. The
// confirmation fails with verification.ErrEmailMismatch when the account
// email changed after the code was sent.
func (s *Service) AccountAssociationConfirm(ctx context.Context, tok, code string) (*Result, error) {
	mgr := s.flow(verification.PurposeAccountAssociation)
	pending, err := mgr.Validate(ctx, tok)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, pending.UserID)
	if err != nil {
		return nil, err
	}
	v, err := mgr.Confirm(ctx, pending.ID, code,
		verification.ExpectUserID(u.ID),
		verification.ExpectEmail(u.Email),
	)
	if err != nil {
		return nil, err
	}
	if err := s.identityLinkable(ctx, u.ID, v.Provider, v.ProviderUserID); err != nil {
		return nil, err
	}

	now := s.now()
	err = s.users.LinkIdentity(ctx, &user.Identity{
		UserID:         u.ID,
		Provider:       v.Provider,
		ProviderUserID: v.ProviderUserID,
		CreatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, user.ErrIdentityTaken) {
			return nil, ErrAccountLinkedElsewhere
		}
		return nil, err
	}

	if !u.EmailVerified {
		u.EmailVerified = true
		u.UpdatedAt = now
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "identity linked",
		logger.UserID(u.ID),
		logger.Event("identity_linked"),
	)
	return s.startSession(ctx, u)
}

// identityLinkable fails with ErrAccountAlreadyLinked when userID already
// has an identity at provider, and with ErrAccountLinkedElsewhere when the
// provider identity belongs to another account.
func (s *Service) identityLinkable(ctx context.Context, userID, provider, providerUserID string) error {
	_, err := s.users.GetUserIdentity(ctx, userID, provider)
	switch {
	case err == nil:
		return ErrAccountAlreadyLinked
	case !errors.Is(err, user.ErrIdentityNotFound):
		return err
	}

	id, err := s.users.GetIdentity(ctx, provider, providerUserID)
	switch {
	case err == nil && id.UserID == userID:
		return ErrAccountAlreadyLinked
	case err == nil:
		return ErrAccountLinkedElsewhere
	case !errors.Is(err, user.ErrIdentityNotFound):
		return err
	}
	return nil
}
