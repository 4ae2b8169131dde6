// Package token encodes and decodes opaque credentials of the form
// "<id>.<secret>".
//
// The id locates a stored record (a login session, a verification session)
// and the secret proves possession of it. The id is random and independent of
// the secret, so it reveals nothing about the credential. Only a digest of the
// secret is stored (see package secret).
//
// # Usage
//
//	id := token.NewID()
//	s, _ := secret.Generate()
//	tok := token.Format(id, s)
//
//	id, s, err := token.Parse(tok)
//	if errors.Is(err, token.ErrMalformedToken) {
//		// reject the request
//	}
//
// Parse accepts exactly one separator with non-empty parts on both sides.
package token
