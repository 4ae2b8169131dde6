package session

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertSessionQuery       = `INSERT INTO sessions (id, user_id, secret_hash, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`
	selectSessionQuery       = `SELECT id, user_id, secret_hash, expires_at, created_at FROM sessions WHERE id = $1`
	updateSessionExpiryQuery = `UPDATE sessions SET expires_at = $2 WHERE id = $1`
	deleteSessionQuery       = `DELETE FROM sessions WHERE id = $1`
	deleteUserSessionsQuery  = `DELETE FROM sessions WHERE user_id = $1`
	deleteExpiredQuery       = `DELETE FROM sessions WHERE expires_at <= $1`
)

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	db DB
}

// NewPostgresStore returns a store backed by db.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return ErrInvalidSession
	}
	_, err := p.db.Exec(ctx, insertSessionQuery, s.ID, s.UserID, s.SecretHash, s.ExpiresAt, s.CreatedAt)
	return err
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := p.db.QueryRow(ctx, selectSessionQuery, id).
		Scan(&s.ID, &s.UserID, &s.SecretHash, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (p *PostgresStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	tag, err := p.db.Exec(ctx, updateSessionExpiryQuery, id, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := p.db.Exec(ctx, deleteSessionQuery, id)
	return err
}

func (p *PostgresStore) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := p.db.Exec(ctx, deleteUserSessionsQuery, userID)
	return err
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteExpiredQuery, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
