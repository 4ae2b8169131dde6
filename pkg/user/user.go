// Package user defines the user account model and the storage contract that
// the session and auth packages depend on. Account persistence belongs to
// the host application; MemoryStore serves tests and local development.
package user

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound         = errors.New("user.not_found")
	ErrEmailTaken       = errors.New("user.email_taken")
	ErrIdentityNotFound = errors.New("user.identity_not_found")
	ErrIdentityTaken    = errors.New("user.identity_taken")
)

// User is an account.
type User struct {
	ID            string
	Email         string
	Name          string
	EmailVerified bool
	PasswordHash  string // empty for accounts without a password
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool { return u.PasswordHash != "" }

// Identity links an account to a user at an external OAuth provider.
type Identity struct {
	UserID         string
	Provider       string
	ProviderUserID string
	CreatedAt      time.Time
}

// Finder resolves users by id.
type Finder interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

// Store is the account storage contract.
// Lookups return ErrNotFound or ErrIdentityNotFound for missing records.
type Store interface {
	Finder
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error

	GetIdentity(ctx context.Context, provider, providerUserID string) (*Identity, error)
	GetUserIdentity(ctx context.Context, userID, provider string) (*Identity, error)
	LinkIdentity(ctx context.Context, identity *Identity) error
}

// NormalizeEmail trims and lowercases an address so that lookups and
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
