package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/secret"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/token"
	"github.com/dmitrymomot/authkit/pkg/user"
)

const day = 24 * time.Hour

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	mgr   *session.Manager
	store *session.MemoryStore
	users *user.MemoryStore
	clock *clock
}

func setupManager(t *testing.T, opts ...session.Option) fixture {
	t.Helper()

	f := fixture{
		store: session.NewMemoryStore(),
		users: user.NewMemoryStore(),
		clock: &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, f.users.Create(context.Background(), &user.User{ID: "user-1", Email: "alice@example.com"}))

	opts = append([]session.Option{
		session.WithClock(f.clock.Now),
		session.WithUserFinder(f.users),
	}, opts...)
	f.mgr = session.New(f.store, secret.NewHasher("session-pepper"), opts...)
	return f
}

func TestManager_CreateValidateInvalidate(t *testing.T) {
	t.Parallel()
	f := setupManager(t)
	ctx := context.Background()

	sess, tok, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(30*day), sess.ExpiresAt)

	id, s, err := token.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, id)
	assert.NotEqual(t, s, sess.SecretHash, "secret is never stored")
	assert.Equal(t, secret.NewHasher("session-pepper").Hash(s), sess.SecretHash)

	got, u, err := f.mgr.Validate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.False(t, got.Refreshed)
	require.NotNil(t, u)
	assert.Equal(t, "user-1", u.ID)

	require.NoError(t, f.mgr.Invalidate(ctx, sess.ID))
	_, _, err = f.mgr.Validate(ctx, tok)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// invalidating twice is fine
	assert.NoError(t, f.mgr.Invalidate(ctx, sess.ID))
}

func TestManager_Validate_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, _, err := f.mgr.Validate(ctx, "no-separator")
		assert.ErrorIs(t, err, token.ErrMalformedToken)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, _, err := f.mgr.Validate(ctx, token.Format("missing", "secret"))
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("secret mismatch keeps session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		sess, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		_, _, err = f.mgr.Validate(ctx, token.Format(sess.ID, secret.MustGenerate()))
		assert.ErrorIs(t, err, session.ErrSecretMismatch)

		_, _, err = f.mgr.Validate(ctx, tok)
		assert.NoError(t, err)
	})

	t.Run("expired exactly at expiry", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		f.clock.Advance(30 * day)
		_, _, err = f.mgr.Validate(ctx, tok)
		assert.ErrorIs(t, err, session.ErrSessionExpired)
		assert.Equal(t, 0, f.store.Len(), "expired session is deleted")

		_, _, err = f.mgr.Validate(ctx, tok)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("valid one nanosecond before expiry", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		f.clock.Advance(30*day - time.Nanosecond)
		_, _, err = f.mgr.Validate(ctx, tok)
		assert.NoError(t, err)
	})

	t.Run("deleted owner", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, tok, err := f.mgr.Create(ctx, "ghost")
		require.NoError(t, err)

		_, _, err = f.mgr.Validate(ctx, tok)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Equal(t, 0, f.store.Len())
	})
}

func TestManager_SlidingRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ten days left is refreshed", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		sess, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		f.clock.Advance(20 * day)
		got, _, err := f.mgr.Validate(ctx, tok)
		require.NoError(t, err)
		assert.True(t, got.Refreshed)
		assert.Equal(t, f.clock.Now().Add(30*day), got.ExpiresAt)

		stored, err := f.store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, got.ExpiresAt, stored.ExpiresAt)
	})

	t.Run("twenty days left is unchanged", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		sess, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		f.clock.Advance(10 * day)
		got, _, err := f.mgr.Validate(ctx, tok)
		require.NoError(t, err)
		assert.False(t, got.Refreshed)
		assert.Equal(t, sess.ExpiresAt, got.ExpiresAt)
	})

	t.Run("exactly at window boundary is refreshed", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, tok, err := f.mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		f.clock.Advance(15 * day)
		got, _, err := f.mgr.Validate(ctx, tok)
		require.NoError(t, err)
		assert.True(t, got.Refreshed)
	})

	t.Run("refresh store failure is not fatal", func(t *testing.T) {
		t.Parallel()
		store := &failingStore{MemoryStore: session.NewMemoryStore(), failUpdate: true}
		c := &clock{t: time.Now()}
		mgr := session.New(store, secret.NewHasher("p"), session.WithClock(c.Now))

		sess, tok, err := mgr.Create(ctx, "user-1")
		require.NoError(t, err)

		c.Advance(20 * day)
		got, u, err := mgr.Validate(ctx, tok)
		require.NoError(t, err)
		assert.Nil(t, u, "no user finder configured")
		assert.False(t, got.Refreshed)
		assert.Equal(t, sess.ExpiresAt, got.ExpiresAt)
	})
}

func TestManager_InvalidateAllForUser(t *testing.T) {
	t.Parallel()
	f := setupManager(t)
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, &user.User{ID: "user-2", Email: "bob@example.com"}))

	_, tok1, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)
	_, tok2, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)
	_, tok3, err := f.mgr.Create(ctx, "user-2")
	require.NoError(t, err)

	require.NoError(t, f.mgr.InvalidateAllForUser(ctx, "user-1"))

	for _, tok := range []string{tok1, tok2} {
		_, _, err := f.mgr.Validate(ctx, tok)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	}
	_, _, err = f.mgr.Validate(ctx, tok3)
	assert.NoError(t, err)
}

func TestManager_SweepExpired(t *testing.T) {
	t.Parallel()
	f := setupManager(t)
	ctx := context.Background()

	_, _, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)
	f.clock.Advance(10 * day)
	_, tok, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)

	f.clock.Advance(20 * day)
	n, err := f.mgr.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, _, err = f.mgr.Validate(ctx, tok)
	assert.NoError(t, err)
}

func TestManager_StorageErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &failingStore{MemoryStore: session.NewMemoryStore(), failAll: true}
	mgr := session.New(store, secret.NewHasher("p"))

	_, _, err := mgr.Create(ctx, "user-1")
	assert.ErrorIs(t, err, session.ErrStorage)

	_, _, err = mgr.Validate(ctx, token.Format("id", "secret"))
	assert.ErrorIs(t, err, session.ErrStorage)

	assert.ErrorIs(t, mgr.Invalidate(ctx, "id"), session.ErrStorage)
	assert.ErrorIs(t, mgr.InvalidateAllForUser(ctx, "user-1"), session.ErrStorage)

	_, err = mgr.SweepExpired(ctx)
	assert.ErrorIs(t, err, session.ErrStorage)
}

func TestManager_Validate_OrphanDeleteFailureLogged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	store := &failingStore{MemoryStore: session.NewMemoryStore(), failDelete: true}
	mgr := session.New(store, secret.NewHasher("p"),
		session.WithUserFinder(user.NewMemoryStore()),
		session.WithLogger(logger.New(logger.WithOutput(&buf))),
	)

	sess, tok, err := mgr.Create(ctx, "ghost")
	require.NoError(t, err)

	_, _, err = mgr.Validate(ctx, tok)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Contains(t, buf.String(), "failed to delete orphaned session")
	assert.Contains(t, buf.String(), sess.ID)
	assert.Contains(t, buf.String(), errBoom.Error())
}

var errBoom = errors.New("boom")

type failingStore struct {
	*session.MemoryStore
	failAll    bool
	failUpdate bool
	failDelete bool
}

func (s *failingStore) Create(ctx context.Context, sess *session.Session) error {
	if s.failAll {
		return errBoom
	}
	return s.MemoryStore.Create(ctx, sess)
}

func (s *failingStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if s.failAll {
		return nil, errBoom
	}
	return s.MemoryStore.Get(ctx, id)
}

func (s *failingStore) UpdateExpiry(ctx context.Context, id string, at time.Time) error {
	if s.failAll || s.failUpdate {
		return errBoom
	}
	return s.MemoryStore.UpdateExpiry(ctx, id, at)
}

func (s *failingStore) Delete(ctx context.Context, id string) error {
	if s.failAll || s.failDelete {
		return errBoom
	}
	return s.MemoryStore.Delete(ctx, id)
}

func (s *failingStore) DeleteByUserID(ctx context.Context, userID string) error {
	if s.failAll {
		return errBoom
	}
	return s.MemoryStore.DeleteByUserID(ctx, userID)
}

func (s *failingStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if s.failAll {
		return 0, errBoom
	}
	return s.MemoryStore.DeleteExpired(ctx, now)
}
