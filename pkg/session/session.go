package session

import "time"

// Session is a login session.
type Session struct {
	ID         string
	UserID     string
	SecretHash string
	ExpiresAt  time.Time
	CreatedAt  time.Time

	// Refreshed is set by Manager.Validate when it extended ExpiresAt.
	// It is not persisted.
	Refreshed bool
}

// IsExpired reports whether the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// InRefreshWindow reports whether the session is within window of expiring.
func (s *Session) InRefreshWindow(now time.Time, window time.Duration) bool {
	return !now.Before(s.ExpiresAt.Add(-window))
}
