package session

import (
	"context"
	"time"
)

// Store persists sessions.
//
// Get and UpdateExpiry return ErrSessionNotFound for unknown ids. Delete and
// DeleteByUserID succeed when nothing matches. DeleteExpired removes every
// session whose expiry is at or before now and reports how many it removed.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
