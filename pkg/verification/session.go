package verification

import "time"

// Purpose tags a verification session with the workflow it belongs to.
type Purpose string

const (
	PurposeEmailVerification  Purpose = "email_verification"
	PurposePasswordReset      Purpose = "password_reset"
	PurposeSignup             Purpose = "signup"
	PurposeAccountAssociation Purpose = "account_association"
	PurposeProviderLink       Purpose = "provider_link"
)

func (p Purpose) String() string { return string(p) }

// Session is a pending verification.
type Session struct {
	ID             string    `json:"id"`
	Purpose        Purpose   `json:"purpose"`
	Subject        string    `json:"subject"`
	UserID         string    `json:"user_id,omitempty"`
	Email          string    `json:"email,omitempty"`
	EmailVerified  bool      `json:"email_verified"`
	Provider       string    `json:"provider,omitempty"`
	ProviderUserID string    `json:"provider_user_id,omitempty"`
	CodeHash       string    `json:"code_hash,omitempty"`
	SecretHash     string    `json:"secret_hash"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsExpired reports whether the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
