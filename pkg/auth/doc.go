// Package auth assembles the kit's primitives into account workflows:
// password login, signup with email confirmation, password reset, email
// verification and change, and linking an external OAuth identity to an
// existing account.
//
// Every workflow that proves control of an address runs in three steps. A
// request issues a verification session and mails its one-time code; the
// caller keeps the returned token. A verify step confirms the code. A
// complete step consumes the verified session and applies the change.
//
//	users := user.NewMemoryStore()
//	hasher := secret.NewHasher(cfg.SessionPepper)
//
//	svc, err := auth.New(auth.Deps{
//		Users:         users,
//		Sessions:      session.New(session.NewMemoryStore(), hasher, session.WithUserFinder(users)),
//		Verifications: auth.NewVerifications(verification.NewMemoryStore(), hasher),
//		Passwords:     password.MustNew(cfg.PasswordConfig()),
//		Mailer:        mailer,
//	})
//
//	challenge, err := svc.SignupRequest(ctx, "alice@example.com")
//	// the user receives the code by email
//	_, err = svc.SignupVerifyEmail(ctx, challenge.Token, code)
//	result, err := svc.SignupComplete(ctx, challenge.Token, "Alice", "correct horse")
//
// # OAuth state
//
// AuthURL and ParseCallbackState carry an OAuthState through the provider
// redirect as a signed, stateless CSRF token. Nothing is stored server side.
//
// # Configuration
//
// Config is loaded from the environment. The password pepper, the session
// pepper and the OAuth state key must all be set and must differ from each
// other.
package auth
