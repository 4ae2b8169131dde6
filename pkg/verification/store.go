package verification

import (
	"context"
	"time"
)

// Store persists verification sessions.
//
// FindByID returns ErrNotFound when no session with id exists for purpose.
// Deletes succeed when nothing matches. DeleteExpired removes expired
// sessions of every purpose.
type Store interface {
	Save(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, purpose Purpose, id string) (*Session, error)
	DeleteByID(ctx context.Context, purpose Purpose, id string) error
	DeleteBySubject(ctx context.Context, purpose Purpose, subject string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Consumer is implemented by stores that can fetch and delete a session in
// one atomic step. Consume returns ErrNotFound when nothing was deleted.
//
// Without it, Manager falls back to FindByID then DeleteByID, and two
// concurrent confirms of the same session can both read it before either
// delete lands.
type Consumer interface {
	Consume(ctx context.Context, purpose Purpose, id string) (*Session, error)
}
