package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/session"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := session.FromContext(r.Context()); ok {
			w.Header().Set("X-Session-ID", sess.ID)
		}
		if u, ok := session.UserFromContext(r.Context()); ok {
			w.Header().Set("X-User-Email", u.Email)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_Cookie(t *testing.T) {
	t.Parallel()

	cookies := cookie.New(cookie.NewPolicy(false, ""))
	f := setupManager(t, session.WithTransport(session.NewCookieTransport(cookies, "sid")))
	ctx := context.Background()
	handler := f.mgr.Middleware(echoHandler())

	sess, tok, err := f.mgr.Create(ctx, "user-1")
	require.NoError(t, err)

	t.Run("valid session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: tok})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, sess.ID, rec.Header().Get("X-Session-ID"))
		assert.Equal(t, "alice@example.com", rec.Header().Get("X-User-Email"))
		assert.Empty(t, rec.Result().Cookies(), "no refresh, no cookie")
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Session-ID"))
	})

	t.Run("invalid token clears cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "bogus.token"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("X-Session-ID"))
		cs := rec.Result().Cookies()
		require.Len(t, cs, 1)
		assert.Equal(t, "sid", cs[0].Name)
		assert.Equal(t, -1, cs[0].MaxAge)
	})

	t.Run("refresh re-issues cookie", func(t *testing.T) {
		f.clock.Advance(20 * day)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: tok})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, sess.ID, rec.Header().Get("X-Session-ID"))
		cs := rec.Result().Cookies()
		require.Len(t, cs, 1)
		assert.Equal(t, tok, cs[0].Value)
		assert.True(t, cs[0].Expires.Equal(f.clock.Now().Add(30*day)))
	})
}

func TestMiddleware_Header(t *testing.T) {
	t.Parallel()

	f := setupManager(t)
	_, tok, err := f.mgr.Create(context.Background(), "user-1")
	require.NoError(t, err)

	handler := f.mgr.Middleware(f.mgr.RequireAuth(echoHandler()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_StorageErrorKeepsToken(t *testing.T) {
	t.Parallel()

	cookies := cookie.New(cookie.NewPolicy(false, ""))
	store := &failingStore{MemoryStore: session.NewMemoryStore(), failAll: true}
	mgr := session.New(store, nil, session.WithTransport(session.NewCookieTransport(cookies, "sid")))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "some.token"})
	rec := httptest.NewRecorder()
	mgr.Middleware(echoHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := session.FromContext(ctx)
	assert.False(t, ok)
	_, ok = session.UserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Panics(t, func() { session.MustFromContext(ctx) })

	ctx = session.WithSession(ctx, &session.Session{ID: "s1", UserID: "u1"})
	assert.Equal(t, "s1", session.MustFromContext(ctx).ID)
	id, ok := session.UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}
