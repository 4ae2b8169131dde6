// Package cookie sets and clears HTTP cookies according to a single Policy
// derived from the deployment environment.
//
// In production cookies are Secure and scoped to the application's root
// domain; in development they are scoped to localhost and sent over plain
// HTTP. Every cookie is HttpOnly, SameSite=Lax and scoped to path "/".
//
//	policy := cookie.NewPolicy(env.IsProduction(), "example.com")
//	m := cookie.New(policy)
//
//	m.SetUntil(w, "session", token, sess.ExpiresAt)
//	value, err := m.Get(r, "session")
//	m.Delete(w, "session")
//
// Deleting a cookie re-issues it empty with Max-Age=0 and an Expires date
// at the Unix epoch, so both modern and legacy user agents drop it.
package cookie
