// Package session manages long-lived login sessions with sliding expiration.
//
// A session is addressed by an opaque token "<id>.<secret>" (see package
// token). The store keeps the id, the owning user, the expiry and a peppered
// SHA-256 digest of the secret; the secret itself is handed to the client
// once, at creation.
//
// Sessions live for Config.TTL (30 days by default). When a session is
// validated inside the last Config.RefreshWindow (15 days) of its life, its
// expiry is pushed to now + TTL, so active users stay signed in while idle
// sessions lapse. A session whose expiry equals the current instant is already
// expired.
//
// # Usage
//
//	mgr := session.New(session.NewPostgresStore(pool), secret.NewHasher(pepper),
//		session.WithUserFinder(users),
//		session.WithTransport(session.NewCookieTransport(cookies, "session")),
//		session.WithLogger(log),
//	)
//
//	sess, tok, err := mgr.Create(ctx, u.ID)
//	mgr.Issue(w, sess, tok)
//
//	// on every request
//	mux.Handle("/", mgr.Middleware(handler))
//
// Validation failures are reported with the sentinel errors in errors.go.
// Storage failures are wrapped with ErrStorage. A wrong secret never deletes
// the stored session, so a guessed id cannot be used to log someone out.
//
// Expired sessions are removed on access and in bulk by SweepExpired, which
// is meant to run periodically (see package sweeper).
package session
