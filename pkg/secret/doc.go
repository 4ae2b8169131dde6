// Package secret generates high-entropy random secrets and derives the
// digests that are stored in place of them.
//
// A secret is 20 bytes from crypto/rand rendered as 32 lowercase base32
// characters (a-z, 2-7) without padding. Only the digest returned by
// [Hasher.Hash] is ever persisted; the plaintext secret travels to the client
// once, inside an opaque token.
//
// Digests are hex-encoded SHA-256 over the secret followed by an optional
// pepper. The pepper is an application-wide secret kept outside of storage,
// so a leaked table of digests cannot be replayed against the service.
//
// # Usage
//
//	h := secret.NewHasher(cfg.SessionPepper)
//
//	s, err := secret.Generate()
//	if err != nil {
//		return err
//	}
//	stored := h.Hash(s)
//
//	// later
//	if !h.Verify(candidate, stored) {
//		return ErrSecretMismatch
//	}
//
// [Equal] performs a constant-time comparison of two strings and is used for
// every comparison of secrets, digests and verification codes in the kit.
package secret
