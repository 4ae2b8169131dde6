package verification

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

const columns = `id, purpose, subject, user_id, email, email_verified, provider, provider_user_id, code_hash, secret_hash, expires_at, created_at`

const (
	upsertQuery = `INSERT INTO verification_sessions (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) ` +
		`ON CONFLICT (id) DO UPDATE SET email_verified = EXCLUDED.email_verified, code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at`
	selectByIDQuery      = `SELECT ` + columns + ` FROM verification_sessions WHERE id = $1 AND purpose = $2`
	consumeQuery         = `DELETE FROM verification_sessions WHERE id = $1 AND purpose = $2 RETURNING ` + columns
	deleteByIDQuery      = `DELETE FROM verification_sessions WHERE id = $1 AND purpose = $2`
	deleteBySubjectQuery = `DELETE FROM verification_sessions WHERE purpose = $1 AND subject = $2`
	deleteExpiredQuery   = `DELETE FROM verification_sessions WHERE expires_at <= $1`
)

// PostgresStore keeps verification sessions in the verification_sessions
// table. Consume uses DELETE ... RETURNING, so confirmations are atomic.
type PostgresStore struct {
	db DB
}

// NewPostgresStore returns a store backed by db.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	_, err := p.db.Exec(ctx, upsertQuery,
		s.ID, string(s.Purpose), s.Subject, s.UserID, s.Email, s.EmailVerified,
		s.Provider, s.ProviderUserID, s.CodeHash, s.SecretHash, s.ExpiresAt, s.CreatedAt,
	)
	return err
}

func (p *PostgresStore) FindByID(ctx context.Context, purpose Purpose, id string) (*Session, error) {
	return scanSession(p.db.QueryRow(ctx, selectByIDQuery, id, string(purpose)))
}

func (p *PostgresStore) Consume(ctx context.Context, purpose Purpose, id string) (*Session, error) {
	return scanSession(p.db.QueryRow(ctx, consumeQuery, id, string(purpose)))
}

func (p *PostgresStore) DeleteByID(ctx context.Context, purpose Purpose, id string) error {
	_, err := p.db.Exec(ctx, deleteByIDQuery, id, string(purpose))
	return err
}

func (p *PostgresStore) DeleteBySubject(ctx context.Context, purpose Purpose, subject string) error {
	_, err := p.db.Exec(ctx, deleteBySubjectQuery, string(purpose), subject)
	return err
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteExpiredQuery, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s       Session
		purpose string
	)
	err := row.Scan(
		&s.ID, &purpose, &s.Subject, &s.UserID, &s.Email, &s.EmailVerified,
		&s.Provider, &s.ProviderUserID, &s.CodeHash, &s.SecretHash, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Purpose = Purpose(purpose)
	return &s, nil
}
