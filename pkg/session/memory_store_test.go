package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()
	store := session.NewMemoryStore()

	assert.ErrorIs(t, store.Create(ctx, nil), session.ErrInvalidSession)
	assert.ErrorIs(t, store.Create(ctx, &session.Session{}), session.ErrInvalidSession)

	s := &session.Session{ID: "a", UserID: "u1", SecretHash: "h", ExpiresAt: now.Add(time.Hour), Refreshed: true}
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.False(t, got.Refreshed, "transient flag is not stored")

	got.UserID = "changed"
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "u1", again.UserID, "Get returns a copy")

	newExpiry := now.Add(2 * time.Hour)
	require.NoError(t, store.UpdateExpiry(ctx, "a", newExpiry))
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, newExpiry, got.ExpiresAt)

	assert.ErrorIs(t, store.UpdateExpiry(ctx, "missing", now), session.ErrSessionNotFound)
	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	require.NoError(t, store.Create(ctx, &session.Session{ID: "b", UserID: "u1", ExpiresAt: now}))
	require.NoError(t, store.Create(ctx, &session.Session{ID: "c", UserID: "u2", ExpiresAt: now.Add(-time.Second)}))

	n, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.DeleteByUserID(ctx, "u1"))
	assert.Equal(t, 0, store.Len())
	assert.NoError(t, store.Delete(ctx, "missing"))
}
